package model

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Kind 单元格取值类别
type Kind uint8

const (
	KindNull Kind = iota
	KindText
	KindNumber
)

// Value 单元格取值。空值、文本、数值三者显式区分，
// 缺失列、空单元格统一为 Null。
type Value struct {
	kind Kind
	text string
	num  float64
}

// Null 空值
func Null() Value { return Value{} }

// Text 文本值
func Text(s string) Value { return Value{kind: KindText, text: s} }

// Number 数值
func Number(f float64) Value { return Value{kind: KindNumber, num: f} }

// Int 整数值
func Int(n int) Value { return Number(float64(n)) }

func (v Value) Kind() Kind { return v.kind }

// Float 数值取值，非数值返回 false
func (v Value) Float() (float64, bool) {
	return v.num, v.kind == KindNumber
}

// IsNull 是否为真正的空值
func (v Value) IsNull() bool { return v.kind == KindNull }

// IsBlank 空值或仅含空白的文本
func (v Value) IsBlank() bool {
	switch v.kind {
	case KindNull:
		return true
	case KindText:
		return strings.TrimSpace(v.text) == ""
	}
	return false
}

// String 文本形式，空值为 ""
func (v Value) String() string {
	switch v.kind {
	case KindText:
		return v.text
	case KindNumber:
		return formatNumber(v.num)
	}
	return ""
}

// Contains 文本包含判断，空值恒为 false
func (v Value) Contains(sub string) bool {
	if v.IsNull() {
		return false
	}
	return strings.Contains(v.String(), sub)
}

// Is 文本相等判断，空值恒为 false
func (v Value) Is(s string) bool {
	if v.IsNull() {
		return false
	}
	return v.String() == s
}

// MarshalJSON 空值输出 null，数值输出数字
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindText:
		return json.Marshal(v.text)
	case KindNumber:
		return json.Marshal(v.num)
	}
	return []byte("null"), nil
}

// ToInt 宽松整数转换：空值、空白、非整数文本均为 0；数值截断取整。
func ToInt(v Value) int {
	switch v.kind {
	case KindNumber:
		if math.IsNaN(v.num) || math.IsInf(v.num, 0) {
			return 0
		}
		return int(v.num)
	case KindText:
		s := strings.TrimSpace(v.text)
		if s == "" {
			return 0
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0
		}
		return n
	}
	return 0
}

func formatNumber(f float64) string {
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
