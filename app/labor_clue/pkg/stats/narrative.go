package stats

import (
	"fmt"
	"strconv"
	"strings"
)

type narrativeInput struct {
	datetime   string
	total      int
	ministry   int
	hotline    int
	yirenduosu string
	duorenyisu string
	repeat     int
	top3       string

	construction  int
	industries    []Entry
	government    int
	stateOwned    int
	otherNature   int
	jiansheRenshu int
	jiansheJine   float64

	nonConstruction int
	feijianIndustry []Entry
	feijianRenshu   int
	feijianJine     float64

	warnings     int
	warningTypes []Entry
}

// narrative 基本情况文本，五段以换行分隔。[手工填写] 为人工补充的占位符。
func narrative(in narrativeInput) string {
	text1 := fmt.Sprintf("1.线索数量。%s，全市共收到欠薪线索%d条（部平台%d条、12345热线%d条），"+
		"较上一期减少[手工填写]条（部平台减少[手工填写]条）。一人多诉%s，多人一诉%s，再次投诉%d条。"+
		"线索数量前三的地方为：%s。",
		in.datetime, in.total, in.ministry, in.hotline, in.yirenduosu, in.duorenyisu, in.repeat, in.top3)

	industry := "其中" + joinEntries(in.industries, "、")
	nature := fmt.Sprintf("涉及政府项目%d个、国企项目%d个、其他商建项目%d个", in.government, in.stateOwned, in.otherNature)
	text2 := fmt.Sprintf("2.建设领域欠薪线索情况。建设领域%d条。(%s，%s），涉及%d人、%s万元。",
		in.construction, industry, nature, in.jiansheRenshu, formatWan(in.jiansheJine))

	feijianIndustry := "其中" + joinEntries(in.feijianIndustry, "、")
	text3 := fmt.Sprintf("3.非建领域欠薪线索情况。非建领域%d条。（%s），涉及%d人、%s万元。",
		in.nonConstruction, feijianIndustry, in.feijianRenshu, formatWan(in.feijianJine))

	text4 := "4.涉稳情况。舆情[手工填写]条。[手工填写]"

	text5 := fmt.Sprintf("5.预警情况。安薪在线系统产生预警信息%d条，%s。",
		in.warnings, "其中"+joinEntries(in.warningTypes, "；"))

	return strings.Join([]string{text1, text2, text3, text4, text5}, "\n")
}

// joinEntries 输出 "西陵区3条、宜都市2条" 形式
func joinEntries(entries []Entry, sep string) string {
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, fmt.Sprintf("%s%d条", e.Key, e.Count))
	}
	return strings.Join(parts, sep)
}

func round2(f float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(f, 'f', 2, 64), 64)
	if err != nil {
		return f
	}
	return r
}

// formatWan 金额（万元）文本，整数也保留一位小数，如 "1.0"、"0.35"
func formatWan(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
