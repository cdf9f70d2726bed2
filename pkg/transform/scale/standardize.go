// Package scale rescales numeric frame columns.
package scale

import (
	"context"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/wdm0006/monsoon/pkg/frame"
)

// Params are the fitted scaling parameters of one column.
type Params struct {
	Mean   float64
	StdDev float64
}

// Standardize rescales every numeric column, except those in Exclude, to
// zero mean and unit variance. Int columns become float columns. Nulls stay
// null. Columns with no spread (or fewer than two observations) are skipped.
// After Apply, Fitted holds the parameters per transformed column.
type Standardize struct {
	Exclude []string

	Fitted map[string]Params
}

func (t *Standardize) Name() string { return "standardize" }

func (t *Standardize) Apply(ctx context.Context, f *frame.Frame) (*frame.Frame, error) {
	if f == nil {
		return nil, nil
	}
	t.Fitted = make(map[string]Params)
	excluded := make(map[string]bool, len(t.Exclude))
	for _, name := range t.Exclude {
		excluded[name] = true
	}

	for _, name := range f.NumericColumns() {
		if excluded[name] {
			continue
		}
		var vals []float64
		n := colLen(f, name)
		for i := 0; i < n; i++ {
			if v, ok := f.FloatAt(name, i); ok {
				vals = append(vals, v)
			}
		}
		if len(vals) < 2 {
			continue
		}
		mean, sd := stat.MeanStdDev(vals, nil)
		if sd == 0 || math.IsNaN(sd) {
			continue
		}

		nc := frame.NewFloatColumn(name, 0)
		for i := 0; i < n; i++ {
			if v, ok := f.FloatAt(name, i); ok {
				nc.Append((v - mean) / sd)
			} else {
				nc.AppendNull()
			}
		}
		if err := f.ReplaceColumn(name, nc); err != nil {
			return nil, err
		}
		t.Fitted[name] = Params{Mean: mean, StdDev: sd}
	}
	return f, nil
}

func colLen(f *frame.Frame, name string) int {
	if col, ok := f.ColumnByName(name); ok {
		return col.Len()
	}
	return 0
}
