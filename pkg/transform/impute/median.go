// Package impute fills missing values in frame columns. Every transform
// tolerates a nil frame, unknown column names, and all-null columns by
// leaving things as they are.
package impute

import (
	"context"
	"sort"

	"github.com/wdm0006/monsoon/pkg/frame"
)

// Median fills nulls in numeric columns with the per-column median of the
// observed values. An empty Columns list means every numeric column.
type Median struct{ Columns []string }

func (t *Median) Name() string { return "impute_median" }

func (t *Median) Apply(ctx context.Context, f *frame.Frame) (*frame.Frame, error) {
	if f == nil {
		return nil, nil
	}
	for _, name := range numericTargets(f, t.Columns) {
		col, ok := f.ColumnByName(name)
		if !ok {
			continue
		}
		switch c := col.(type) {
		case *frame.FloatColumn:
			vals := c.Values()
			if len(vals) == 0 {
				continue
			}
			med := medianFloat(vals)
			for i := 0; i < c.Len(); i++ {
				if c.IsNull(i) {
					c.Set(i, med)
				}
			}
		case *frame.IntColumn:
			vals := make([]int64, 0, c.Len())
			for i := 0; i < c.Len(); i++ {
				if v, ok := c.Get(i); ok {
					vals = append(vals, v)
				}
			}
			if len(vals) == 0 {
				continue
			}
			sort.Slice(vals, func(i, j int) bool { return vals[i] < vals[j] })
			mid := len(vals) / 2
			med := vals[mid]
			if len(vals)%2 == 0 {
				med = (vals[mid-1] + vals[mid]) / 2
			}
			for i := 0; i < c.Len(); i++ {
				if c.IsNull(i) {
					c.Set(i, med)
				}
			}
		}
	}
	return f, nil
}

func medianFloat(vals []float64) float64 {
	sort.Float64s(vals)
	mid := len(vals) / 2
	if len(vals)%2 == 0 {
		return (vals[mid-1] + vals[mid]) / 2
	}
	return vals[mid]
}

// numericTargets resolves an explicit column list, defaulting to all numeric
// columns when none is given.
func numericTargets(f *frame.Frame, cols []string) []string {
	if len(cols) > 0 {
		return cols
	}
	return f.NumericColumns()
}
