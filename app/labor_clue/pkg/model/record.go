package model

// 事件来源、领域等固定取值
const (
	SourceWarning       = "安薪在线"
	SourceMinistry      = "部平台"
	SourceHotlinePrefix = "12345/"

	DomainConstruction = "建筑"
)

// 汇总表列名，顺序即输出顺序
const (
	ColSeq           = "序号"
	ColCaseNo        = "流水号"
	ColUrgency       = "紧急程度"
	ColEventSource   = "事件来源"
	ColComplainant   = "诉求人"
	ColPhone         = "诉求人电话"
	ColTitle         = "诉求标题"
	ColContent       = "诉求内容"
	ColDistrict      = "所属区域"
	ColDomain        = "所涉领域"
	ColStabilityRisk = "是否涉稳"
	ColIndustry      = "所涉行业"
	ColProject       = "所涉项目（企业）"
	ColNature        = "项目性质"
	ColInRegulation  = "是否在监管系统中"
	ColProjectStatus = "项目状态"
	ColBuilder       = "建设单位"
	ColContractor    = "总包单位"
	ColPeople        = "涉及人数"
	ColAmount        = "涉及金额"
	ColRepeat        = "是否再次投诉"
	ColConstructor   = "施工单位"
	ColManager       = "项目经理"
	ColContactPhone  = "联系电话"
	ColWarningType   = "预警类型"
	ColWarningReason = "预警原因"
	ColWarningTime   = "预警时间"
	ColWarningStatus = "状态"
	ColWarningDays   = "预警天数"
)

var recordColumns = []string{
	ColSeq, ColCaseNo, ColUrgency, ColEventSource, ColComplainant, ColPhone,
	ColTitle, ColContent, ColDistrict, ColDomain, ColStabilityRisk, ColIndustry,
	ColProject, ColNature, ColInRegulation, ColProjectStatus, ColBuilder,
	ColContractor, ColPeople, ColAmount, ColRepeat,
	ColConstructor, ColManager, ColContactPhone, ColWarningType,
	ColWarningReason, ColWarningTime, ColWarningStatus, ColWarningDays,
}

// Columns 汇总表全部列名（副本）
func Columns() []string {
	return append([]string(nil), recordColumns...)
}

// Record 汇总表中的一行。两个数据源的行均映射为该结构，
// 源数据中没有的字段为 Null。
type Record struct {
	Seq           int
	CaseNo        Value
	Urgency       Value
	EventSource   Value
	Complainant   Value
	Phone         Value
	Title         Value
	Content       Value
	District      Value
	Domain        Value
	StabilityRisk Value
	Industry      Value
	Project       Value
	Nature        Value
	InRegulation  Value
	ProjectStatus Value
	Builder       Value
	Contractor    Value
	People        Value
	Amount        Value
	Repeat        Value

	// 安薪在线专有字段
	Constructor   Value
	Manager       Value
	ContactPhone  Value
	WarningType   Value
	WarningReason Value
	WarningTime   Value
	WarningStatus Value
	WarningDays   Value
}

// Values 按 Columns 顺序返回各字段
func (r *Record) Values() []Value {
	return []Value{
		Int(r.Seq), r.CaseNo, r.Urgency, r.EventSource, r.Complainant, r.Phone,
		r.Title, r.Content, r.District, r.Domain, r.StabilityRisk, r.Industry,
		r.Project, r.Nature, r.InRegulation, r.ProjectStatus, r.Builder,
		r.Contractor, r.People, r.Amount, r.Repeat,
		r.Constructor, r.Manager, r.ContactPhone, r.WarningType,
		r.WarningReason, r.WarningTime, r.WarningStatus, r.WarningDays,
	}
}

// IsWarning 是否来自安薪在线
func (r *Record) IsWarning() bool {
	return r.EventSource.Is(SourceWarning)
}

// IsConstruction 是否属于建筑领域
func (r *Record) IsConstruction() bool {
	return r.Domain.Is(DomainConstruction)
}

// Warned 预警类型非空值即视为预警，仅含空白的文本也算
func (r *Record) Warned() bool {
	return !r.WarningType.IsNull()
}

// Unwarned 预警类型为空值或空白，计入线索数量
func (r *Record) Unwarned() bool {
	return r.WarningType.IsBlank()
}
