package impute

import (
	"context"

	"github.com/wdm0006/monsoon/pkg/frame"
)

// Mean fills nulls in numeric columns with the per-column arithmetic mean of
// the observed values. An empty Columns list means every numeric column.
type Mean struct{ Columns []string }

func (t *Mean) Name() string { return "impute_mean" }

func (t *Mean) Apply(ctx context.Context, f *frame.Frame) (*frame.Frame, error) {
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
			var sum float64
			var n int
			for i := 0; i < c.Len(); i++ {
				if v, ok := c.Get(i); ok {
					sum += v
					n++
				}
			}
			if n == 0 {
				continue
			}
			mean := sum / float64(n)
			for i := 0; i < c.Len(); i++ {
				if c.IsNull(i) {
					c.Set(i, mean)
				}
			}
		case *frame.IntColumn:
			var sum int64
			var n int
			for i := 0; i < c.Len(); i++ {
				if v, ok := c.Get(i); ok {
					sum += v
					n++
				}
			}
			if n == 0 {
				continue
			}
			mean := float64(sum) / float64(n)
			// round to nearest
			for i := 0; i < c.Len(); i++ {
				if c.IsNull(i) {
					c.Set(i, int64(mean+0.5))
				}
			}
		}
	}
	return f, nil
}
