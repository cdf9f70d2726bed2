// Package profile summarizes a frame column by column, mainly so the CLIs
// can report missing-value counts before and after cleaning.
package profile

import (
	"math"

	"github.com/wdm0006/monsoon/pkg/frame"
)

// ColumnProfile is the per-column summary of one pass over a frame.
type ColumnProfile struct {
	Name  string
	Kind  frame.Kind
	Rows  int
	Nulls int

	// Min/Max/Mean are populated for numeric columns with at least one
	// observed value.
	Min  float64
	Max  float64
	Mean float64
}

// Collect profiles every column of f. A nil frame yields nil.
func Collect(f *frame.Frame) []ColumnProfile {
	if f == nil {
		return nil
	}
	out := make([]ColumnProfile, 0, f.Cols())
	for _, cs := range f.Schema().Columns {
		col, _ := f.ColumnByName(cs.Name)
		cp := ColumnProfile{Name: cs.Name, Kind: cs.Type, Rows: col.Len()}

		if cs.Type == frame.KindFloat || cs.Type == frame.KindInt {
			min, max, sum := math.Inf(1), math.Inf(-1), 0.0
			n := 0
			for i := 0; i < col.Len(); i++ {
				v, ok := f.FloatAt(cs.Name, i)
				if !ok {
					cp.Nulls++
					continue
				}
				if v < min {
					min = v
				}
				if v > max {
					max = v
				}
				sum += v
				n++
			}
			if n > 0 {
				cp.Min = min
				cp.Max = max
				cp.Mean = sum / float64(n)
			}
		} else {
			for i := 0; i < col.Len(); i++ {
				if col.IsNull(i) {
					cp.Nulls++
				}
			}
		}
		out = append(out, cp)
	}
	return out
}

// TotalNulls sums null counts across column profiles.
func TotalNulls(profiles []ColumnProfile) int {
	total := 0
	for _, p := range profiles {
		total += p.Nulls
	}
	return total
}
