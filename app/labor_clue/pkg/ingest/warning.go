package ingest

import (
	"github.com/iWorld-y/labor_clue/app/labor_clue/pkg/model"
	"github.com/iWorld-y/labor_clue/app/labor_clue/pkg/region"
)

// 安薪在线导出表列名
const (
	WarningColProject  = "项目名称"
	WarningColIndustry = "行业"
	WarningColDistrict = "区域"
)

// WarningColumns 安薪在线导出表中读取的 12 列
var WarningColumns = []string{
	WarningColProject, WarningColIndustry, model.ColBuilder, model.ColConstructor,
	model.ColManager, model.ColContactPhone, WarningColDistrict, model.ColWarningType,
	model.ColWarningReason, model.ColWarningTime, model.ColWarningStatus, model.ColWarningDays,
}

// Warning 将安薪在线预警表格转换为汇总表行。
// 事件来源固定为 "安薪在线"，所涉领域固定为 "建筑"，序号按源表顺序从 1 开始。
func Warning(src *model.Sheet, n *region.Normalizer) []model.Record {
	records := make([]model.Record, 0, src.Len())
	for i := 0; i < src.Len(); i++ {
		cell := func(col string) model.Value { return src.Cell(i, col) }
		records = append(records, model.Record{
			Seq:         i + 1,
			EventSource: model.Text(model.SourceWarning),
			District:    n.NormalizeValue(cell(WarningColDistrict), region.Warning),
			Domain:      model.Text(model.DomainConstruction),
			Industry:    cell(WarningColIndustry),
			Project:     cell(WarningColProject),
			Builder:     cell(model.ColBuilder),

			Constructor:   cell(model.ColConstructor),
			Manager:       cell(model.ColManager),
			ContactPhone:  cell(model.ColContactPhone),
			WarningType:   cell(model.ColWarningType),
			WarningReason: cell(model.ColWarningReason),
			WarningTime:   cell(model.ColWarningTime),
			WarningStatus: cell(model.ColWarningStatus),
			WarningDays:   cell(model.ColWarningDays),
		})
	}
	return records
}
