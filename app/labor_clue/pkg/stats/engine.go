package stats

import (
	"fmt"
	"strings"
	"time"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/iWorld-y/labor_clue/app/labor_clue/pkg/model"
)

const (
	// 同一电话或同一项目出现次数达到该值即计入一人多诉/多人一诉
	repeatThreshold = 3
	// 建筑类人数 >= 3、非建类人数 > 3 视为涉及人数较多
	largeProjectPeople = 3

	natureGovernment = "政府"
	natureStateOwned = "国企"
)

// views 汇总表的三个分区
type views struct {
	all             []model.Record
	nonWarning      []model.Record
	warning         []model.Record
	construction    []model.Record
	nonConstruction []model.Record
}

func partition(records []model.Record) views {
	v := views{all: records}
	for _, r := range records {
		if r.IsWarning() {
			v.warning = append(v.warning, r)
			continue
		}
		v.nonWarning = append(v.nonWarning, r)
		if r.IsConstruction() {
			v.construction = append(v.construction, r)
		} else {
			v.nonConstruction = append(v.nonConstruction, r)
		}
	}
	return v
}

// Compute 基于汇总表计算基本情况文本与数据看板。reportDate 形如 "20250101"。
func Compute(records []model.Record, reportDate string) (string, *Dashboard, error) {
	if _, err := time.Parse("20060102", reportDate); err != nil {
		return "", nil, fmt.Errorf("invalid report date %q: %w", reportDate, err)
	}
	datetime := fmt.Sprintf("%s年%s月%s日", reportDate[:4], reportDate[4:6], reportDate[6:])

	v := partition(records)
	d := &Dashboard{Datetime: datetime}

	// 1. 线索数量
	d.XiansuoCount = len(v.nonWarning)
	eventSources := CountBy(v.nonWarning, func(r *model.Record) model.Value { return r.EventSource })
	for _, r := range v.nonWarning {
		if r.EventSource.Is(model.SourceMinistry) {
			d.XiansuoBupingtaiCount++
		}
		if !r.EventSource.IsNull() && strings.HasPrefix(r.EventSource.String(), model.SourceHotlinePrefix) {
			d.Xiansuo12345Count++
		}
		if r.Repeat.Contains("是") {
			d.ZaicitousuCount++
		}
	}
	phones := CountBy(v.nonWarning, func(r *model.Record) model.Value { return r.Phone })
	d.Yirenduosu = countOrNone(phones.AtLeast(repeatThreshold))
	projects := CountBy(v.nonWarning, func(r *model.Record) model.Value { return r.Project })
	d.Duorenyisu = countOrNone(projects.AtLeast(repeatThreshold))

	districts := CountBy(v.nonWarning, byDistrict)
	d.XiansuoCountTop3 = joinEntries(districts.Top(3), "、")

	// 2. 建设领域
	d.JiansheProjectCount = len(v.construction)
	industries := CountBy(v.construction, byIndustry)
	gov, soe, other := natureSplit(v.construction)
	d.JiansheRenshu, d.JiansheJine = sumPeopleAmount(v.construction)

	// 3. 非建领域
	d.FeijianProjectCount = len(v.nonConstruction)
	feijianIndustries := CountBy(v.nonConstruction, byIndustry)
	d.FeijianRenshu, d.FeijianJine = sumPeopleAmount(v.nonConstruction)

	// 5. 预警
	d.AxzxYvjingCount = len(v.warning)
	warningTypes := CountBy(v.warning, func(r *model.Record) model.Value { return r.WarningType })

	d.BasicInfo = narrative(narrativeInput{
		datetime:        datetime,
		total:           d.XiansuoCount,
		ministry:        d.XiansuoBupingtaiCount,
		hotline:         d.Xiansuo12345Count,
		yirenduosu:      d.Yirenduosu,
		duorenyisu:      d.Duorenyisu,
		repeat:          d.ZaicitousuCount,
		top3:            d.XiansuoCountTop3,
		construction:    d.JiansheProjectCount,
		industries:      industries.Sorted(),
		government:      gov,
		stateOwned:      soe,
		otherNature:     other,
		jiansheRenshu:   d.JiansheRenshu,
		jiansheJine:     d.JiansheJine,
		nonConstruction: d.FeijianProjectCount,
		feijianIndustry: feijianIndustries.Sorted(),
		feijianRenshu:   d.FeijianRenshu,
		feijianJine:     d.FeijianJine,
		warnings:        d.AxzxYvjingCount,
		warningTypes:    warningTypes.Sorted(),
	})

	// 看板明细
	d.FeijianIndustryData = feijianIndustries.Counts()
	d.WarningCaseTotal = len(v.warning)
	d.UniqueConstructionUnits = CountBy(v.warning, func(r *model.Record) model.Value { return r.Builder }).Len()
	d.UniqueProjects = CountBy(v.warning, func(r *model.Record) model.Value { return r.Project }).Len()
	d.WarningIndustryCounts = CountBy(v.warning, byIndustry).Counts()
	d.WarningStatusCounts = CountBy(v.warning, func(r *model.Record) model.Value { return r.WarningStatus }).Counts()

	observed := CountBy(v.all, byDistrict).Keys()
	d.DistrictCounts = districts.Counts()
	d.JiansheDistrictCounts = CountBy(v.construction, byDistrict).Dense(observed)
	d.FeijianDistrictCounts = CountBy(v.nonConstruction, byDistrict).Dense(observed)
	d.WarningDistrictCounts = CountBy(v.warning, byDistrict).Dense(observed)

	d.IndustryCounts = industries.Counts()
	d.FeijianIndustryCounts = feijianIndustries.Counts()
	d.WarningTypes = warningTypes.Counts()

	nature := orderedmap.New[string, int]()
	nature.Set("政府项目", gov)
	nature.Set("国企项目", soe)
	nature.Set("其他商建项目", other)
	d.ProjectNatureCounts = nature

	d.EventSourceCounts = eventSources.Counts()
	d.JiansheEventSourceCounts = CountBy(v.construction, func(r *model.Record) model.Value { return r.EventSource }).Counts()
	d.JiansheIndustryCounts = industries.Counts()
	d.JiansheProjectNatureCounts = CountBy(v.construction, func(r *model.Record) model.Value { return r.Nature }).Counts()

	d.JiansheScatterData = scatter(v.construction)
	d.JianshePeopleAvg, d.JiansheAmountAvg = scatterAvg(d.JiansheScatterData)
	d.FeijianEventSourceCounts = CountBy(v.nonConstruction, func(r *model.Record) model.Value { return r.EventSource }).Counts()
	d.FeijianScatterData = scatter(v.nonConstruction)
	d.FeijianPeopleAvg, d.FeijianAmountAvg = scatterAvg(d.FeijianScatterData)

	d.JiansheLargeProjects = largeProjects(v.construction, func(people int) bool { return people >= largeProjectPeople })
	d.FeijianLargeProjects = largeProjects(v.nonConstruction, func(people int) bool { return people > largeProjectPeople })

	return d.BasicInfo, d, nil
}

func byDistrict(r *model.Record) model.Value { return r.District }
func byIndustry(r *model.Record) model.Value { return r.Industry }

// natureSplit 项目性质按 "政府"、"国企" 包含匹配分别计数，两者都不含（含空值）计为其他。
// 同时包含两个关键字的行会被政府、国企各计一次。
func natureSplit(records []model.Record) (gov, soe, other int) {
	for _, r := range records {
		isGov := r.Nature.Contains(natureGovernment)
		isSOE := r.Nature.Contains(natureStateOwned)
		if isGov {
			gov++
		}
		if isSOE {
			soe++
		}
		if !isGov && !isSOE {
			other++
		}
	}
	return gov, soe, other
}

// sumPeopleAmount 人数合计与金额合计（万元，保留两位小数）
func sumPeopleAmount(records []model.Record) (int, float64) {
	people, amount := 0, 0
	for _, r := range records {
		people += model.ToInt(r.People)
		amount += model.ToInt(r.Amount)
	}
	return people, round2(float64(amount) / 10000)
}

func scatter(records []model.Record) []ScatterPoint {
	points := make([]ScatterPoint, 0)
	for _, r := range records {
		people := model.ToInt(r.People)
		amount := model.ToInt(r.Amount)
		if people > 0 || amount > 0 {
			points = append(points, ScatterPoint{ID: r.Seq, People: people, Amount: amount})
		}
	}
	return points
}

func scatterAvg(points []ScatterPoint) (float64, float64) {
	if len(points) == 0 {
		return 0, 0
	}
	people, amount := 0, 0
	for _, p := range points {
		people += p.People
		amount += p.Amount
	}
	n := float64(len(points))
	return float64(people) / n, float64(amount) / n
}

func largeProjects(records []model.Record, large func(people int) bool) []LargeProject {
	list := make([]LargeProject, 0)
	for _, r := range records {
		people := model.ToInt(r.People)
		if !large(people) {
			continue
		}
		list = append(list, LargeProject{
			ProjectName: orDash(r.Project),
			District:    orDash(r.District),
			Industry:    orDash(r.Industry),
			PeopleCount: people,
			Amount:      float64(model.ToInt(r.Amount)),
			Applicant:   orDash(r.Complainant),
			Content:     orDash(r.Content),
		})
	}
	return list
}

func orDash(v model.Value) string {
	if v.IsBlank() {
		return "--"
	}
	return v.String()
}

func countOrNone(n int) string {
	if n > 0 {
		return fmt.Sprintf("%d条", n)
	}
	return "无"
}
