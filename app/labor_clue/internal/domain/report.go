package domain

import (
	"fmt"

	"github.com/iWorld-y/labor_clue/app/labor_clue/pkg/model"
	"github.com/iWorld-y/labor_clue/app/labor_clue/pkg/stats"
)

const (
	// SummarySheet 汇总表工作表名
	SummarySheet = "劳动监察线索汇总表"
	// StatisticsSheet 统计表工作表名
	StatisticsSheet = "劳动监察线索数据情况统计表"
	// OutputSuffix 输出文件名后缀，前缀为 YYYYMMDD
	OutputSuffix = "劳动监察线索汇总和统计.xlsx"
)

// Upload 一个上传的表格文件
type Upload struct {
	Filename string
	Content  []byte
}

// ProcessRequest 一次汇总请求
type ProcessRequest struct {
	Hotline    Upload
	Warning    Upload
	ReportDate string // 为空时取当天
}

// String 日志中只输出文件名与大小
func (r *ProcessRequest) String() string {
	return fmt.Sprintf("hotline=%s(%dB) warning=%s(%dB) date=%s",
		r.Hotline.Filename, len(r.Hotline.Content), r.Warning.Filename, len(r.Warning.Content), r.ReportDate)
}

// SheetData 待写出的一张工作表
type SheetData struct {
	Name    string
	Columns []string
	Rows    [][]model.Value
}

// Workbook 输出文件的两张工作表，Statistics 需要合并单元格
type Workbook struct {
	Summary    SheetData
	Statistics SheetData
}

// ProcessResult 一次汇总的输出
type ProcessResult struct {
	RunID     string
	Filename  string
	Content   []byte
	BasicInfo string
	Dashboard *stats.Dashboard
}
