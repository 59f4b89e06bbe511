package data

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/iWorld-y/labor_clue/app/labor_clue/internal/domain"
	"github.com/iWorld-y/labor_clue/app/labor_clue/pkg/model"
	"github.com/iWorld-y/labor_clue/app/labor_clue/pkg/report"
)

func testWorkbook() *domain.Workbook {
	basic := strings.Repeat("基本情况", 30)
	stat := func(district, domainName string) []model.Value {
		return []model.Value{
			model.Text(basic), model.Text(district), model.Text("张三"), model.Text(domainName),
			model.Int(1), model.Text("无"), model.Int(0), model.Text(""),
		}
	}
	return &domain.Workbook{
		Summary: domain.SheetData{
			Name:    domain.SummarySheet,
			Columns: []string{"序号", "电话", "人数", "预警时间"},
			Rows: [][]model.Value{
				{model.Int(1), model.Text("07176666666"), model.Int(5), model.Null()},
				{model.Int(2), model.Text("x"), model.Number(2.5), model.Text("2025-01-02")},
			},
		},
		Statistics: domain.SheetData{
			Name:    domain.StatisticsSheet,
			Columns: report.Columns(),
			Rows: [][]model.Value{
				stat("西陵区", report.DomainConstruction),
				stat("", report.DomainNonConstruction),
				stat("伍家岗区", report.DomainConstruction),
				stat("", report.DomainNonConstruction),
			},
		},
	}
}

func TestWorkbookRepo_RoundTrip(t *testing.T) {
	r := NewWorkbookRepo(log.DefaultLogger)
	ctx := context.Background()

	content, err := r.Encode(ctx, testWorkbook())
	require.NoError(t, err)

	sheet, err := r.Decode(ctx, domain.Upload{Filename: "OUT.XLSX", Content: content})
	require.NoError(t, err)

	require.Equal(t, 2, sheet.Len())
	assert.Equal(t, []string{"序号", "电话", "人数", "预警时间"}, sheet.Columns)
	assert.Equal(t, model.Text("07176666666"), sheet.Cell(0, "电话"))
	assert.Equal(t, model.Number(5), sheet.Cell(0, "人数"))
	assert.True(t, sheet.Cell(0, "预警时间").IsNull())
	assert.Equal(t, model.Number(2.5), sheet.Cell(1, "人数"))
	assert.Equal(t, model.Text("2025-01-02"), sheet.Cell(1, "预警时间"))
}

func TestWorkbookRepo_StatisticsLayout(t *testing.T) {
	content, err := NewWorkbookRepo(log.DefaultLogger).Encode(context.Background(), testWorkbook())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{domain.SummarySheet, domain.StatisticsSheet}, f.GetSheetList())

	merges, err := f.GetMergeCells(domain.StatisticsSheet)
	require.NoError(t, err)
	var ranges []string
	for _, m := range merges {
		ranges = append(ranges, m.GetStartAxis()+":"+m.GetEndAxis())
	}
	assert.ElementsMatch(t, []string{"A2:A5", "B2:B3", "C2:C3", "B4:B5", "C4:C5"}, ranges)

	width, err := f.GetColWidth(domain.StatisticsSheet, "A")
	require.NoError(t, err)
	assert.Equal(t, float64(maxColWidth), width)

	width, err = f.GetColWidth(domain.StatisticsSheet, "D")
	require.NoError(t, err)
	assert.Equal(t, float64(4), width)
}

func TestWorkbookRepo_DecodeErrors(t *testing.T) {
	r := NewWorkbookRepo(log.DefaultLogger)
	ctx := context.Background()

	_, err := r.Decode(ctx, domain.Upload{Filename: "data.csv", Content: []byte("a,b")})
	assert.Error(t, err)

	_, err = r.Decode(ctx, domain.Upload{Filename: "data.xlsx", Content: []byte("not a zip")})
	assert.Error(t, err)
}

func TestXLSValue(t *testing.T) {
	assert.Equal(t, model.Text("0717"), xlsValue("0717"))
	assert.Equal(t, model.Number(12.5), xlsValue("12.5"))
	assert.Equal(t, model.Number(0.5), xlsValue("0.5"))
	assert.Equal(t, model.Number(0), xlsValue("0"))
	assert.Equal(t, model.Text("宜都"), xlsValue("宜都"))
}
