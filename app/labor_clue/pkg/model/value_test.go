package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToInt(t *testing.T) {
	tests := []struct {
		name string
		in   Value
		want int
	}{
		{"empty text", Text(""), 0},
		{"whitespace", Text("  "), 0},
		{"integer text", Text("12"), 12},
		{"padded integer", Text(" 12 "), 12},
		{"letters", Text("abc"), 0},
		{"decimal text", Text("12.5"), 0},
		{"null", Null(), 0},
		{"float", Number(12.0), 12},
		{"fraction truncates", Number(12.9), 12},
		{"nan", Number(math.NaN()), 0},
		{"negative", Text("-3"), -3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToInt(tt.in))
		})
	}
}

func TestValue_Blank(t *testing.T) {
	assert.True(t, Null().IsBlank())
	assert.True(t, Text(" \t").IsBlank())
	assert.False(t, Text("超期").IsBlank())
	assert.False(t, Number(0).IsBlank())

	assert.True(t, Null().IsNull())
	assert.False(t, Text("").IsNull())
}

func TestValue_String(t *testing.T) {
	assert.Equal(t, "", Null().String())
	assert.Equal(t, "13800000000", Number(13800000000).String())
	assert.Equal(t, "2.5", Number(2.5).String())
	assert.Equal(t, "是", Text("是").String())
}

func TestValue_ContainsAndIs(t *testing.T) {
	assert.True(t, Text("否，是").Contains("是"))
	assert.False(t, Null().Contains("是"))
	assert.False(t, Null().Is(""))
	assert.True(t, Text("建筑").Is(DomainConstruction))
}

func TestValue_MarshalJSON(t *testing.T) {
	b, err := Null().MarshalJSON()
	assert.NoError(t, err)
	assert.Equal(t, "null", string(b))

	b, err = Number(3).MarshalJSON()
	assert.NoError(t, err)
	assert.Equal(t, "3", string(b))
}

func TestSheet_Cell(t *testing.T) {
	s := NewSheet([]string{" 区域 ", "行业", "区域"}, [][]Value{
		{Text("宜昌市-宜都市"), Text("房建")},
	})

	assert.Equal(t, 1, s.Len())
	assert.True(t, s.Has("区域"))
	assert.Equal(t, "宜昌市-宜都市", s.Cell(0, "区域").String())
	// short row
	assert.True(t, s.Cell(0, "不存在").IsNull())
	assert.True(t, s.Cell(3, "区域").IsNull())

	var nilSheet *Sheet
	assert.Equal(t, 0, nilSheet.Len())
	assert.True(t, nilSheet.Cell(0, "区域").IsNull())
}

func TestRecord_ValuesMatchColumns(t *testing.T) {
	r := Record{Seq: 7, District: Text("宜都市")}
	vals := r.Values()
	cols := Columns()

	assert.Len(t, vals, len(cols))
	assert.Len(t, cols, 29)
	assert.Equal(t, "7", vals[0].String())
	assert.Equal(t, "宜都市", vals[8].String())
	assert.Equal(t, ColDistrict, cols[8])
}

func TestRecord_Warned(t *testing.T) {
	cases := []struct {
		name     string
		typ      Value
		warned   bool
		unwarned bool
	}{
		{"null", Null(), false, true},
		{"empty", Text(""), true, true},
		{"whitespace", Text("  "), true, true},
		{"typed", Text("超期"), true, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := Record{WarningType: tc.typ}
			assert.Equal(t, tc.warned, r.Warned())
			assert.Equal(t, tc.unwarned, r.Unwarned())
		})
	}
}
