package region

import (
	"fmt"
	"strings"
)

// Alias 区域别名映射，From 为别名，To 为规范区域名
type Alias struct {
	From string `json:"from" yaml:"from"`
	To   string `json:"to" yaml:"to"`
}

// Owner 区域对应的专班包保人
type Owner struct {
	District string `json:"district" yaml:"district"`
	Name     string `json:"name" yaml:"name"`
}

// Tables 区域相关的静态配置。别名与区域列表均有序，匹配时按顺序取第一个命中项。
type Tables struct {
	Aliases   []Alias  `json:"aliases" yaml:"aliases"`
	Districts []string `json:"districts" yaml:"districts"`
	Owners    []Owner  `json:"owners" yaml:"owners"`
}

// DefaultTables 宜昌市 14 个县市区的默认配置
func DefaultTables() Tables {
	return Tables{
		Aliases: []Alias{
			{"长阳土家族自治县", "长阳县"},
			{"五峰土家族自治县", "五峰县"},
			{"宜都", "宜都市"},
			{"当阳", "当阳市"},
			{"枝江", "枝江市"},
			{"点军", "点军区"},
			{"高新", "高新区"},
			{"西陵", "西陵区"},
			{"猇亭", "猇亭区"},
			{"兴山", "兴山县"},
			{"长阳", "长阳县"},
			{"秭归", "秭归县"},
			{"五峰", "五峰县"},
		},
		Districts: []string{
			"宜都市", "枝江市", "当阳市", "远安县", "兴山县", "秭归县", "长阳县",
			"五峰县", "夷陵区", "西陵区", "伍家岗区", "点军区", "猇亭区", "高新区",
		},
		Owners: []Owner{
			{"宜都市", "罗雷"},
			{"枝江市", "孟禹"},
			{"当阳市", "侯民杰"},
			{"远安县", "熊伟"},
			{"兴山县", "牟鹏"},
			{"秭归县", "叶磊"},
			{"长阳县", "杨继平"},
			{"五峰县", "肖丰"},
			{"夷陵区", "韩晓明"},
			{"西陵区", "董蒋军"},
			{"伍家岗区", "雷斌斌"},
			{"点军区", "储成刚"},
			{"猇亭区", "朱强"},
			{"高新区", "侯民杰"},
		},
	}
}

// IsZero 是否未配置
func (t Tables) IsZero() bool {
	return len(t.Aliases) == 0 && len(t.Districts) == 0 && len(t.Owners) == 0
}

// Validate 校验配置的一致性
func (t Tables) Validate() error {
	if len(t.Districts) == 0 {
		return fmt.Errorf("region: districts is empty")
	}
	seen := make(map[string]struct{}, len(t.Districts))
	for _, d := range t.Districts {
		if strings.TrimSpace(d) == "" {
			return fmt.Errorf("region: blank district name")
		}
		if _, ok := seen[d]; ok {
			return fmt.Errorf("region: duplicate district %q", d)
		}
		seen[d] = struct{}{}
	}
	for _, a := range t.Aliases {
		if a.From == "" {
			return fmt.Errorf("region: alias for %q has empty key", a.To)
		}
		if _, ok := seen[a.To]; !ok {
			return fmt.Errorf("region: alias %q maps to unknown district %q", a.From, a.To)
		}
	}
	for _, o := range t.Owners {
		if _, ok := seen[o.District]; !ok {
			return fmt.Errorf("region: owner %q assigned to unknown district %q", o.Name, o.District)
		}
	}
	return nil
}

// Clone 深拷贝，防止调用方修改共享切片
func (t Tables) Clone() Tables {
	return Tables{
		Aliases:   append([]Alias(nil), t.Aliases...),
		Districts: append([]string(nil), t.Districts...),
		Owners:    append([]Owner(nil), t.Owners...),
	}
}

// Owner 查询区域的专班包保人，未配置时返回 ""
func (t Tables) Owner(district string) string {
	for _, o := range t.Owners {
		if o.District == district {
			return o.Name
		}
	}
	return ""
}
