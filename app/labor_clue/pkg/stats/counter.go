package stats

import (
	"sort"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/iWorld-y/labor_clue/app/labor_clue/pkg/model"
)

// Counts 有序计数表，JSON 序列化时保持插入顺序
type Counts = orderedmap.OrderedMap[string, int]

// Counter 按首次出现顺序记录取值频次，空值不计
type Counter struct {
	m *Counts
}

// NewCounter 创建计数器
func NewCounter() *Counter {
	return &Counter{m: orderedmap.New[string, int]()}
}

// CountBy 对每行取出的字段计数
func CountBy(records []model.Record, field func(*model.Record) model.Value) *Counter {
	c := NewCounter()
	for i := range records {
		c.Add(field(&records[i]))
	}
	return c
}

// Add 计数一次，空值忽略
func (c *Counter) Add(v model.Value) {
	if v.IsNull() {
		return
	}
	key := v.String()
	n, _ := c.m.Get(key)
	c.m.Set(key, n+1)
}

// Len 不同取值个数
func (c *Counter) Len() int { return c.m.Len() }

// Get 取值出现次数
func (c *Counter) Get(key string) int {
	n, _ := c.m.Get(key)
	return n
}

// Keys 按首次出现顺序的取值
func (c *Counter) Keys() []string {
	keys := make([]string, 0, c.m.Len())
	for p := c.m.Oldest(); p != nil; p = p.Next() {
		keys = append(keys, p.Key)
	}
	return keys
}

// Entry 一个取值及其频次
type Entry struct {
	Key   string
	Count int
}

// Sorted 按频次降序，频次相同时保持首次出现顺序
func (c *Counter) Sorted() []Entry {
	entries := make([]Entry, 0, c.m.Len())
	for p := c.m.Oldest(); p != nil; p = p.Next() {
		entries = append(entries, Entry{Key: p.Key, Count: p.Value})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	return entries
}

// Top 频次最高的前 n 项
func (c *Counter) Top(n int) []Entry {
	entries := c.Sorted()
	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

// AtLeast 频次不低于 min 的取值个数
func (c *Counter) AtLeast(min int) int {
	count := 0
	for p := c.m.Oldest(); p != nil; p = p.Next() {
		if p.Value >= min {
			count++
		}
	}
	return count
}

// Counts 按频次降序的有序计数表
func (c *Counter) Counts() *Counts {
	out := orderedmap.New[string, int]()
	for _, e := range c.Sorted() {
		out.Set(e.Key, e.Count)
	}
	return out
}

// Dense 以给定键集合输出计数，未出现的键计 0
func (c *Counter) Dense(keys []string) *Counts {
	out := orderedmap.New[string, int]()
	for _, k := range keys {
		out.Set(k, c.Get(k))
	}
	return out
}
