package model

import "strings"

// Sheet 上传表格解码后的原始数据：首行为列名，其余为数据行。
// 列是否存在不作保证，缺失列按空值读取。
type Sheet struct {
	Columns []string
	Rows    [][]Value

	index map[string]int
}

// NewSheet 由列名和数据行构建原始表格。列名去除首尾空白，重名列取第一列。
func NewSheet(columns []string, rows [][]Value) *Sheet {
	s := &Sheet{
		Columns: make([]string, len(columns)),
		Rows:    rows,
		index:   make(map[string]int, len(columns)),
	}
	for i, c := range columns {
		c = strings.TrimSpace(c)
		s.Columns[i] = c
		if _, ok := s.index[c]; !ok && c != "" {
			s.index[c] = i
		}
	}
	return s
}

// Len 数据行数
func (s *Sheet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Rows)
}

// Has 是否包含指定列
func (s *Sheet) Has(column string) bool {
	if s == nil {
		return false
	}
	_, ok := s.index[column]
	return ok
}

// Cell 读取单元格，列不存在或越界时返回空值
func (s *Sheet) Cell(row int, column string) Value {
	if s == nil || row < 0 || row >= len(s.Rows) {
		return Null()
	}
	i, ok := s.index[column]
	if !ok || i >= len(s.Rows[row]) {
		return Null()
	}
	return s.Rows[row][i]
}
