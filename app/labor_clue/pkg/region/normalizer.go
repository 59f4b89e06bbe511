package region

import (
	"strings"

	"github.com/iWorld-y/labor_clue/app/labor_clue/pkg/model"
)

// Kind 区域文本的来源格式
type Kind int

const (
	// Hotline 12345 热线：自由文本，别名按包含关系匹配
	Hotline Kind = iota
	// Warning 安薪在线：形如 "宜昌市-伍家岗区-伍家乡" 的层级文本，别名按全等匹配
	Warning
)

func (k Kind) String() string {
	switch k {
	case Hotline:
		return "hotline"
	case Warning:
		return "warning"
	}
	return "unknown"
}

// Normalizer 将区域文本归一为规范县市区名称
type Normalizer struct {
	tables Tables
}

// NewNormalizer 创建归一器，配置在创建后不可变
func NewNormalizer(tables Tables) *Normalizer {
	return &Normalizer{tables: tables.Clone()}
}

// Tables 返回配置副本
func (n *Normalizer) Tables() Tables {
	return n.tables.Clone()
}

// Normalize 归一区域名称。依次尝试别名、规范区域名包含匹配，均未命中时原样返回。
func (n *Normalizer) Normalize(raw string, kind Kind) string {
	working := raw
	if kind == Warning {
		working = segment(raw)
		for _, a := range n.tables.Aliases {
			if working == a.From {
				return a.To
			}
		}
	} else {
		for _, a := range n.tables.Aliases {
			if strings.Contains(working, a.From) {
				return a.To
			}
		}
	}

	for _, d := range n.tables.Districts {
		if strings.Contains(working, d) {
			return d
		}
	}
	return working
}

// NormalizeValue 对单元格归一，空值保持为空
func (n *Normalizer) NormalizeValue(v model.Value, kind Kind) model.Value {
	if v.IsNull() {
		return v
	}
	return model.Text(n.Normalize(v.String(), kind))
}

// segment 三段取中间，两段取最后一段，其余原样
func segment(raw string) string {
	parts := strings.Split(raw, "-")
	switch len(parts) {
	case 2, 3:
		return parts[1]
	}
	return raw
}
