package ingest

import (
	"github.com/iWorld-y/labor_clue/app/labor_clue/pkg/model"
	"github.com/iWorld-y/labor_clue/app/labor_clue/pkg/region"
)

// HotlineColumns 12345 热线导出表中按列名直接复制的 21 列
var HotlineColumns = []string{
	model.ColSeq, model.ColCaseNo, model.ColUrgency, model.ColEventSource,
	model.ColComplainant, model.ColPhone, model.ColTitle, model.ColContent,
	model.ColDistrict, model.ColDomain, model.ColStabilityRisk, model.ColIndustry,
	model.ColProject, model.ColNature, model.ColInRegulation, model.ColProjectStatus,
	model.ColBuilder, model.ColContractor, model.ColPeople, model.ColAmount,
	model.ColRepeat,
}

// Hotline 将 12345 热线表格转换为汇总表行。
// 缺失列读作空值，所属区域按热线格式归一，安薪在线专有字段置空。
func Hotline(src *model.Sheet, n *region.Normalizer) []model.Record {
	records := make([]model.Record, 0, src.Len())
	for i := 0; i < src.Len(); i++ {
		cell := func(col string) model.Value { return src.Cell(i, col) }
		records = append(records, model.Record{
			Seq:           model.ToInt(cell(model.ColSeq)),
			CaseNo:        cell(model.ColCaseNo),
			Urgency:       cell(model.ColUrgency),
			EventSource:   cell(model.ColEventSource),
			Complainant:   cell(model.ColComplainant),
			Phone:         cell(model.ColPhone),
			Title:         cell(model.ColTitle),
			Content:       cell(model.ColContent),
			District:      n.NormalizeValue(cell(model.ColDistrict), region.Hotline),
			Domain:        cell(model.ColDomain),
			StabilityRisk: cell(model.ColStabilityRisk),
			Industry:      cell(model.ColIndustry),
			Project:       cell(model.ColProject),
			Nature:        cell(model.ColNature),
			InRegulation:  cell(model.ColInRegulation),
			ProjectStatus: cell(model.ColProjectStatus),
			Builder:       cell(model.ColBuilder),
			Contractor:    cell(model.ColContractor),
			People:        cell(model.ColPeople),
			Amount:        cell(model.ColAmount),
			Repeat:        cell(model.ColRepeat),
		})
	}
	return records
}

// MissingColumns 返回源表缺少的列，仅用于日志提示
func MissingColumns(src *model.Sheet, expected []string) []string {
	var missing []string
	for _, c := range expected {
		if !src.Has(c) {
			missing = append(missing, c)
		}
	}
	return missing
}
