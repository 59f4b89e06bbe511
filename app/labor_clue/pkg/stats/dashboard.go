package stats

// ScatterPoint 散点图数据：涉及人数与金额
type ScatterPoint struct {
	ID     int `json:"id"`
	People int `json:"people"`
	Amount int `json:"amount"`
}

// LargeProject 涉及人数较多的项目
type LargeProject struct {
	ProjectName string  `json:"project_name"`
	District    string  `json:"district"`
	Industry    string  `json:"industry"`
	PeopleCount int     `json:"people_count"`
	Amount      float64 `json:"amount"`
	Applicant   string  `json:"applicant"`
	Content     string  `json:"content"`
}

// Dashboard 数据看板。字段顺序即 JSON 输出顺序，构建后不再修改。
type Dashboard struct {
	Datetime  string `json:"datetime"`
	BasicInfo string `json:"basic_info"`

	XiansuoCount            int     `json:"xiansuo_count"`
	XiansuoBupingtaiCount   int     `json:"xiansuo_bupingtai_count"`
	Xiansuo12345Count       int     `json:"xiansuo_12345_count"`
	Yirenduosu              string  `json:"yirenduosu"`
	Duorenyisu              string  `json:"duorenyisu"`
	ZaicitousuCount         int     `json:"zaicitousu_count"`
	XiansuoCountTop3        string  `json:"xiansuo_count_top3"`
	JiansheProjectCount     int     `json:"jianshe_project_count"`
	JiansheRenshu           int     `json:"jianshe_renshu"`
	JiansheJine             float64 `json:"jianshe_jine"`
	FeijianProjectCount     int     `json:"feijian_project_count"`
	FeijianRenshu           int     `json:"feijian_renshu"`
	FeijianJine             float64 `json:"feijian_jine"`
	FeijianIndustryData     *Counts `json:"feijian_industry_data"`
	AxzxYvjingCount         int     `json:"axzx_yvjing_count"`
	WarningCaseTotal        int     `json:"warning_case_total"`
	UniqueConstructionUnits int     `json:"unique_construction_units"`
	UniqueProjects          int     `json:"unique_projects"`

	WarningIndustryCounts      *Counts `json:"warning_industry_counts"`
	WarningStatusCounts        *Counts `json:"warning_status_counts"`
	DistrictCounts             *Counts `json:"district_counts"`
	JiansheDistrictCounts      *Counts `json:"jianshe_district_counts"`
	FeijianDistrictCounts      *Counts `json:"feijian_district_counts"`
	WarningDistrictCounts      *Counts `json:"warning_district_counts"`
	IndustryCounts             *Counts `json:"industry_counts"`
	FeijianIndustryCounts      *Counts `json:"feijian_industry_counts"`
	WarningTypes               *Counts `json:"warning_types"`
	ProjectNatureCounts        *Counts `json:"project_nature_counts"`
	EventSourceCounts          *Counts `json:"event_source_counts"`
	JiansheEventSourceCounts   *Counts `json:"jianshe_event_source_counts"`
	JiansheIndustryCounts      *Counts `json:"jianshe_industry_counts"`
	JiansheProjectNatureCounts *Counts `json:"jianshe_project_nature_counts"`

	JiansheScatterData       []ScatterPoint `json:"jianshe_scatter_data"`
	JianshePeopleAvg         float64        `json:"jianshe_people_avg"`
	JiansheAmountAvg         float64        `json:"jianshe_amount_avg"`
	FeijianEventSourceCounts *Counts        `json:"feijian_event_source_counts"`
	FeijianScatterData       []ScatterPoint `json:"feijian_scatter_data"`
	FeijianPeopleAvg         float64        `json:"feijian_people_avg"`
	FeijianAmountAvg         float64        `json:"feijian_amount_avg"`

	JiansheLargeProjects []LargeProject `json:"jianshe_large_projects"`
	FeijianLargeProjects []LargeProject `json:"feijian_large_projects"`
}
