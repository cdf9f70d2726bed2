package derive

import (
	"context"
	"strconv"
	"strings"

	"github.com/wdm0006/monsoon/pkg/frame"
)

// CoerceNumeric converts every measurement-role column (per the rule set) to
// a float column. Cells that do not parse as numbers become nulls. Columns
// that are already numeric are left untouched.
type CoerceNumeric struct {
	Rules RuleSet
}

func (t *CoerceNumeric) Name() string { return "coerce_numeric" }

func (t *CoerceNumeric) Apply(ctx context.Context, f *frame.Frame) (*frame.Frame, error) {
	if f == nil {
		return nil, nil
	}
	rules := t.Rules
	if rules == nil {
		rules = DefaultRules()
	}
	for _, name := range rules.ColumnsWithRole(f, RoleMeasurement) {
		col, ok := f.ColumnByName(name)
		if !ok {
			continue
		}
		c, ok := col.(*frame.StringColumn)
		if !ok {
			continue
		}
		nc := frame.NewFloatColumn(name, 0)
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
			nc.Append(v)
		}
		if err := f.ReplaceColumn(name, nc); err != nil {
			return nil, err
		}
	}
	return f, nil
}
