package impute

import (
	"context"
	"sort"

	"github.com/wdm0006/monsoon/pkg/frame"
)

// Mode fills nulls in categorical columns with the per-column most frequent
// value. Ties go to the smallest value, matching the first entry of a sorted
// mode list. An empty Columns list means every string column.
type Mode struct{ Columns []string }

func (t *Mode) Name() string { return "impute_mode" }

func (t *Mode) Apply(ctx context.Context, f *frame.Frame) (*frame.Frame, error) {
	if f == nil {
		return nil, nil
	}
	targets := t.Columns
	if len(targets) == 0 {
		targets = f.StringColumns()
	}
	for _, name := range targets {
		col, ok := f.ColumnByName(name)
		if !ok {
			continue
		}
		c, ok := col.(*frame.StringColumn)
		if !ok {
			continue
		}
		counts := make(map[string]int)
		for i := 0; i < c.Len(); i++ {
			if v, ok := c.Get(i); ok {
				counts[v]++
			}
		}
		if len(counts) == 0 {
			continue
		}
		keys := make([]string, 0, len(counts))
		for k := range counts {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		best := keys[0]
		for _, k := range keys[1:] {
			if counts[k] > counts[best] {
				best = k
			}
		}
		for i := 0; i < c.Len(); i++ {
			if c.IsNull(i) {
				c.Set(i, best)
			}
		}
	}
	return f, nil
}
