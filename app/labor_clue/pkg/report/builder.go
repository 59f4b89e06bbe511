package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/iWorld-y/labor_clue/app/labor_clue/pkg/model"
	"github.com/iWorld-y/labor_clue/app/labor_clue/pkg/region"
)

// 统计表列名
const (
	ColBasicInfo = "基本情况"
	ColDistrict  = "区域"
	ColOwner     = "专班包保（后续有调整）"
	ColDomain    = "领域"
	ColCount     = "线索数量"
	ColStability = "涉稳"
	ColWarning   = "预警"
	ColArrears   = "欠薪点位"

	DomainConstruction    = "建设"
	DomainNonConstruction = "非建"

	stabilityNone = "无"
)

// Columns 统计表列名
func Columns() []string {
	return []string{ColBasicInfo, ColDistrict, ColOwner, ColDomain, ColCount, ColStability, ColWarning, ColArrears}
}

// Row 数据情况统计表中的一行
type Row struct {
	BasicInfo string
	District  string
	Owner     string
	Domain    string
	Count     int
	Stability string
	Warning   int
	Arrears   string
}

// Values 按 Columns 顺序输出
func (r Row) Values() []model.Value {
	return []model.Value{
		model.Text(r.BasicInfo), model.Text(r.District), model.Text(r.Owner), model.Text(r.Domain),
		model.Int(r.Count), model.Text(r.Stability), model.Int(r.Warning), model.Text(r.Arrears),
	}
}

// Builder 按县市区生成统计表
type Builder struct {
	tables region.Tables
}

// NewBuilder 创建统计表构建器，区域列表与包保人在创建时注入
func NewBuilder(tables region.Tables) *Builder {
	return &Builder{tables: tables.Clone()}
}

// Build 每个县市区输出建设、非建两行，首行携带基本情况全文。
func (b *Builder) Build(records []model.Record, basicInfo string) []Row {
	rows := make([]Row, 0, 2*len(b.tables.Districts))
	for i, district := range b.tables.Districts {
		info := ""
		if i == 0 {
			info = basicInfo
		}
		owner := b.tables.Owner(district)

		var construction, nonConstruction []model.Record
		for _, r := range records {
			if !r.District.Is(district) {
				continue
			}
			if r.IsConstruction() {
				construction = append(construction, r)
			} else {
				nonConstruction = append(nonConstruction, r)
			}
		}

		// 空白预警类型既计入线索数量，也计入预警
		var plain, warned []model.Record
		count := 0
		for _, r := range construction {
			if r.Unwarned() {
				count++
			}
			if r.Warned() {
				warned = append(warned, r)
			} else {
				plain = append(plain, r)
			}
		}
		nonConstructionPlain := 0
		for _, r := range nonConstruction {
			if r.Unwarned() {
				nonConstructionPlain++
			}
		}

		var arrears strings.Builder
		for _, r := range plain {
			arrears.WriteString(arrearsPoint(r))
		}
		for _, r := range warned {
			fmt.Fprintf(&arrears, "%s因%s预警；", r.Project.String(), r.WarningReason.String())
		}

		var nonArrears strings.Builder
		for _, r := range nonConstruction {
			nonArrears.WriteString(arrearsPoint(r))
		}

		rows = append(rows,
			Row{
				BasicInfo: info,
				District:  district,
				Owner:     owner,
				Domain:    DomainConstruction,
				Count:     count,
				Stability: stabilityNone,
				Warning:   len(warned),
				Arrears:   arrears.String(),
			},
			Row{
				Owner:     owner,
				Domain:    DomainNonConstruction,
				Count:     nonConstructionPlain,
				Stability: stabilityNone,
				Arrears:   nonArrears.String(),
			},
		)
	}
	return rows
}

// arrearsPoint 形如 "江南花园（5人10000元）；"
func arrearsPoint(r model.Record) string {
	return r.Project.String() + "（" +
		strconv.Itoa(model.ToInt(r.People)) + "人" +
		strconv.Itoa(model.ToInt(r.Amount)) + "元）；"
}
