package derive

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/wdm0006/monsoon/pkg/frame"
)

// BuildDate coerces the YEAR and MONTH columns (per the rule set) to
// integers and, when both are present, adds a date column set to the first
// day of the month. Rows with a missing or out-of-range year/month get a
// null date, never an error. Nothing happens when either column is absent.
type BuildDate struct {
	Rules  RuleSet
	Column string // output column name; default "DATE"
}

func (t *BuildDate) Name() string { return "build_date" }

func (t *BuildDate) Apply(ctx context.Context, f *frame.Frame) (*frame.Frame, error) {
	if f == nil {
		return nil, nil
	}
	rules := t.Rules
	if rules == nil {
		rules = DefaultRules()
	}
	years := rules.ColumnsWithRole(f, RoleYear)
	months := rules.ColumnsWithRole(f, RoleMonth)

	for _, name := range append(append([]string{}, years...), months...) {
		if err := coerceToInt(f, name); err != nil {
			return nil, err
		}
	}
	if len(years) == 0 || len(months) == 0 {
		return f, nil
	}

	out := t.Column
	if out == "" {
		out = "DATE"
	}
	dateCol, err := f.AddColumn(frame.ColumnSchema{Name: out, Type: frame.KindTime, Nullable: true})
	if err != nil {
		// a date column already exists; leave it alone
		return f, nil
	}
	dc := dateCol.(*frame.TimeColumn)

	yearName, monthName := years[0], months[0]
	for r := 0; r < f.Rows(); r++ {
		y, okY := f.FloatAt(yearName, r)
		m, okM := f.FloatAt(monthName, r)
		if !okY || !okM || m < 1 || m > 12 || y < 1 {
			continue
		}
		dc.Set(r, time.Date(int(y), time.Month(int(m)), 1, 0, 0, 0, 0, time.UTC))
	}
	return f, nil
}

// SortByDate orders rows ascending by the date column, nulls last. A frame
// without the column passes through unchanged.
type SortByDate struct {
	Column string // default "DATE"
}

func (t *SortByDate) Name() string { return "sort_by_date" }

func (t *SortByDate) Apply(ctx context.Context, f *frame.Frame) (*frame.Frame, error) {
	if f == nil {
		return nil, nil
	}
	name := t.Column
	if name == "" {
		name = "DATE"
	}
	col, ok := f.ColumnByName(name)
	if !ok {
		return f, nil
	}
	dc, ok := col.(*frame.TimeColumn)
	if !ok {
		return f, nil
	}
	f.SortBy(func(i, j int) bool {
		a, okA := dc.Get(i)
		b, okB := dc.Get(j)
		if okA != okB {
			return okA
		}
		if !okA {
			return false
		}
		return a.Before(b)
	})
	return f, nil
}

// coerceToInt replaces a string or float column with an int column, turning
// unparseable cells into nulls. Int columns are left as-is.
func coerceToInt(f *frame.Frame, name string) error {
	col, ok := f.ColumnByName(name)
	if !ok {
		return nil
	}
	switch c := col.(type) {
	case *frame.IntColumn:
		return nil
	case *frame.FloatColumn:
		nc := frame.NewIntColumn(name, 0)
		for i := 0; i < c.Len(); i++ {
			if v, ok := c.Get(i); ok {
				nc.Append(int64(v))
			} else {
				nc.AppendNull()
			}
		}
		return f.ReplaceColumn(name, nc)
	case *frame.StringColumn:
		nc := frame.NewIntColumn(name, 0)
		for i := 0; i < c.Len(); i++ {
			s, ok := c.Get(i)
			if !ok {
				nc.AppendNull()
				continue
			}
			v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
			if err != nil {
				nc.AppendNull()
				continue
			}
			nc.Append(int64(v))
		}
		return f.ReplaceColumn(name, nc)
	}
	return nil
}
