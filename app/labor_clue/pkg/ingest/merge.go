package ingest

import "github.com/iWorld-y/labor_clue/app/labor_clue/pkg/model"

// Merge 拼接两组汇总表行（热线在前），并重新生成 1..N 的序号。不去重。
func Merge(hotline, warning []model.Record) []model.Record {
	merged := make([]model.Record, 0, len(hotline)+len(warning))
	merged = append(merged, hotline...)
	merged = append(merged, warning...)
	for i := range merged {
		merged[i].Seq = i + 1
	}
	return merged
}
