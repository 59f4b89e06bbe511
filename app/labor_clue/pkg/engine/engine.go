package engine

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/iWorld-y/labor_clue/app/labor_clue/pkg/ingest"
	"github.com/iWorld-y/labor_clue/app/labor_clue/pkg/logger"
	"github.com/iWorld-y/labor_clue/app/labor_clue/pkg/model"
	"github.com/iWorld-y/labor_clue/app/labor_clue/pkg/region"
	"github.com/iWorld-y/labor_clue/app/labor_clue/pkg/report"
	"github.com/iWorld-y/labor_clue/app/labor_clue/pkg/stats"
)

// Engine 汇总与统计的核心流程：表格转换 → 合并 → 统计 → 生成统计表。
// 不持有请求间状态，可被并发调用。
type Engine struct {
	normalizer *region.Normalizer
	builder    *report.Builder
}

// NewEngine 创建引擎实例
func NewEngine(tables region.Tables) (*Engine, error) {
	if err := tables.Validate(); err != nil {
		return nil, fmt.Errorf("区域配置无效: %w", err)
	}
	return &Engine{
		normalizer: region.NewNormalizer(tables),
		builder:    report.NewBuilder(tables),
	}, nil
}

// RunOptions 运行选项
type RunOptions struct {
	RunID      string
	ReportDate string // YYYYMMDD
}

// Result 一次运行的全部产物
type Result struct {
	Records   []model.Record
	BasicInfo string
	Dashboard *stats.Dashboard
	Report    []report.Row
}

// Run 执行一次完整的汇总统计
func (e *Engine) Run(hotline, warning *model.Sheet, opts RunOptions) (*Result, error) {
	log := logger.Log.WithFields(logrus.Fields{"run_id": opts.RunID})

	if missing := ingest.MissingColumns(hotline, ingest.HotlineColumns); len(missing) > 0 {
		log.Warnf("12345 数据缺少列 %v，按空值处理", missing)
	}
	if missing := ingest.MissingColumns(warning, ingest.WarningColumns); len(missing) > 0 {
		log.Warnf("安薪在线数据缺少列 %v，按空值处理", missing)
	}

	records := ingest.Merge(
		ingest.Hotline(hotline, e.normalizer),
		ingest.Warning(warning, e.normalizer),
	)
	log.Infof("汇总表生成完成，行数: %d (12345: %d, 安薪在线: %d)", len(records), hotline.Len(), warning.Len())

	basicInfo, dashboard, err := stats.Compute(records, opts.ReportDate)
	if err != nil {
		return nil, fmt.Errorf("生成基本情况失败: %w", err)
	}
	log.Debugf("基本情况:\n%s", basicInfo)

	rows := e.builder.Build(records, basicInfo)
	log.Infof("统计表生成完成，行数: %d", len(rows))

	return &Result{
		Records:   records,
		BasicInfo: basicInfo,
		Dashboard: dashboard,
		Report:    rows,
	}, nil
}

// Normalize 单独归一一个区域文本
func (e *Engine) Normalize(raw string, kind region.Kind) string {
	return e.normalizer.Normalize(raw, kind)
}
