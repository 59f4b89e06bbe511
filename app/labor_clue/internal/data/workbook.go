package data

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/extrame/xls"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/xuri/excelize/v2"

	"github.com/iWorld-y/labor_clue/app/labor_clue/internal/domain"
	"github.com/iWorld-y/labor_clue/app/labor_clue/internal/repo"
	"github.com/iWorld-y/labor_clue/app/labor_clue/pkg/model"
)

// maxColWidth 统计表列宽上限
const maxColWidth = 50

type workbookRepo struct {
	log *log.Helper
}

// NewWorkbookRepo 创建基于 excelize 的表格读写实现，.xls 使用 extrame/xls 读取
func NewWorkbookRepo(logger log.Logger) repo.WorkbookRepo {
	return &workbookRepo{log: log.NewHelper(logger)}
}

func (r *workbookRepo) Decode(ctx context.Context, upload domain.Upload) (*model.Sheet, error) {
	switch strings.ToLower(filepath.Ext(upload.Filename)) {
	case ".xlsx":
		return decodeXLSX(upload.Content)
	case ".xls":
		return decodeXLS(upload.Content)
	default:
		return nil, fmt.Errorf("不支持的文件类型: %s", upload.Filename)
	}
}

func decodeXLSX(content []byte) (*model.Sheet, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("文件中没有工作表")
	}
	name := sheets[0]

	formatted, err := f.GetRows(name)
	if err != nil {
		return nil, err
	}
	raw, err := f.GetRows(name, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}
	if len(formatted) == 0 {
		return model.NewSheet(nil, nil), nil
	}

	var rows [][]model.Value
	for i := 1; i < len(formatted); i++ {
		row := make([]model.Value, len(formatted[i]))
		empty := true
		for j, text := range formatted[i] {
			if text == "" {
				row[j] = model.Null()
				continue
			}
			empty = false
			row[j] = model.Text(text)

			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				continue
			}
			typ, err := f.GetCellType(name, cell)
			if err != nil || (typ != excelize.CellTypeUnset && typ != excelize.CellTypeNumber) {
				continue
			}
			// 日期等带格式的数值保留显示文本
			if _, err := strconv.ParseFloat(strings.ReplaceAll(text, ",", ""), 64); err != nil {
				continue
			}
			if i < len(raw) && j < len(raw[i]) {
				if num, err := strconv.ParseFloat(raw[i][j], 64); err == nil {
					row[j] = model.Number(num)
				}
			}
		}
		if !empty {
			rows = append(rows, row)
		}
	}
	return model.NewSheet(formatted[0], rows), nil
}

func decodeXLS(content []byte) (*model.Sheet, error) {
	wb, err := xls.OpenReader(bytes.NewReader(content), "utf-8")
	if err != nil {
		return nil, err
	}
	if wb.NumSheets() == 0 {
		return nil, fmt.Errorf("文件中没有工作表")
	}
	ws := wb.GetSheet(0)
	if ws == nil {
		return nil, fmt.Errorf("文件中没有工作表")
	}

	var header []string
	var rows [][]model.Value
	for i := 0; i <= int(ws.MaxRow); i++ {
		row := ws.Row(i)
		if row == nil {
			continue
		}
		if header == nil {
			for j := 0; j < row.LastCol(); j++ {
				header = append(header, row.Col(j))
			}
			continue
		}
		values := make([]model.Value, row.LastCol())
		empty := true
		for j := range values {
			text := row.Col(j)
			if text == "" {
				values[j] = model.Null()
				continue
			}
			empty = false
			values[j] = xlsValue(text)
		}
		if !empty {
			rows = append(rows, values)
		}
	}
	return model.NewSheet(header, rows), nil
}

// xlsValue .xls 单元格只能拿到文本，形如数值且无前导零时按数值处理
func xlsValue(text string) model.Value {
	s := strings.TrimSpace(text)
	if len(s) > 1 && s[0] == '0' && s[1] != '.' {
		return model.Text(text)
	}
	if num, err := strconv.ParseFloat(s, 64); err == nil && !math.IsInf(num, 0) && !math.IsNaN(num) {
		return model.Number(num)
	}
	return model.Text(text)
}

func (r *workbookRepo) Encode(ctx context.Context, wb *domain.Workbook) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), wb.Summary.Name); err != nil {
		return nil, err
	}
	if err := writeSheet(f, wb.Summary); err != nil {
		return nil, fmt.Errorf("写入%s失败: %w", wb.Summary.Name, err)
	}

	if _, err := f.NewSheet(wb.Statistics.Name); err != nil {
		return nil, err
	}
	if err := writeSheet(f, wb.Statistics); err != nil {
		return nil, fmt.Errorf("写入%s失败: %w", wb.Statistics.Name, err)
	}
	if err := layoutStatistics(f, wb.Statistics); err != nil {
		return nil, fmt.Errorf("设置%s格式失败: %w", wb.Statistics.Name, err)
	}
	f.SetActiveSheet(0)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	r.log.WithContext(ctx).Debugf("workbook encoded: %d bytes", buf.Len())
	return buf.Bytes(), nil
}

func writeSheet(f *excelize.File, sheet domain.SheetData) error {
	header := make([]interface{}, len(sheet.Columns))
	for i, c := range sheet.Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheet.Name, "A1", &header); err != nil {
		return err
	}
	for i, row := range sheet.Rows {
		for j, v := range row {
			if v.IsNull() {
				continue
			}
			axis, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet.Name, axis, cellValue(v)); err != nil {
				return err
			}
		}
	}
	return nil
}

func cellValue(v model.Value) interface{} {
	switch v.Kind() {
	case model.KindNumber:
		n, _ := v.Float()
		if n == math.Trunc(n) && math.Abs(n) < 1e15 {
			return int64(n)
		}
		return n
	default:
		return v.String()
	}
}

// layoutStatistics 基本情况列整体合并，区域与包保列按两行一组合并，并按内容调整列宽
func layoutStatistics(f *excelize.File, sheet domain.SheetData) error {
	name := sheet.Name
	last := len(sheet.Rows) + 1

	style, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Vertical: "center", WrapText: true},
	})
	if err != nil {
		return err
	}

	if last >= 2 {
		bottom := fmt.Sprintf("A%d", last)
		if err := f.MergeCell(name, "A2", bottom); err != nil {
			return err
		}
		if err := f.SetCellStyle(name, "A2", bottom, style); err != nil {
			return err
		}
	}
	for row := 2; row+1 <= last; row += 2 {
		for _, col := range []string{"B", "C"} {
			top := fmt.Sprintf("%s%d", col, row)
			bottom := fmt.Sprintf("%s%d", col, row+1)
			if err := f.MergeCell(name, top, bottom); err != nil {
				return err
			}
			if err := f.SetCellStyle(name, top, bottom, style); err != nil {
				return err
			}
		}
	}

	for j, width := range columnWidths(sheet) {
		col, err := excelize.ColumnNumberToName(j + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(name, col, col, width); err != nil {
			return err
		}
	}
	return nil
}

// columnWidths 每列取最长内容的字符数 +2，不超过 maxColWidth
func columnWidths(sheet domain.SheetData) []float64 {
	widths := make([]float64, len(sheet.Columns))
	longest := make([]int, len(sheet.Columns))
	for j, c := range sheet.Columns {
		longest[j] = utf8.RuneCountInString(c)
	}
	for _, row := range sheet.Rows {
		for j, v := range row {
			if j >= len(longest) {
				break
			}
			if n := utf8.RuneCountInString(v.String()); n > longest[j] {
				longest[j] = n
			}
		}
	}
	for j, n := range longest {
		widths[j] = math.Min(float64(n+2), maxColWidth)
	}
	return widths
}
