// Package derive adds columns computed from existing ones: calendar dates
// from YEAR/MONTH pairs, and numeric views of measurement columns. Column
// detection goes through an explicit rule set instead of ad-hoc name checks.
package derive

import (
	"strings"

	"github.com/wdm0006/monsoon/pkg/frame"
)

// Role is the semantic meaning assigned to a column by name.
type Role int

const (
	RoleNone Role = iota
	RoleYear
	RoleMonth
	RoleMeasurement
)

// Rule maps a case-insensitive name substring to a role.
type Rule struct {
	Substring string
	Role      Role
}

// RuleSet is an ordered list of rules; the first match wins.
type RuleSet []Rule

// DefaultRules matches the rainfall dataset conventions: YEAR and MONTH
// columns, and any column mentioning rain or precipitation as a measurement.
func DefaultRules() RuleSet {
	return RuleSet{
		{Substring: "YEAR", Role: RoleYear},
		{Substring: "MONTH", Role: RoleMonth},
		{Substring: "RAIN", Role: RoleMeasurement},
		{Substring: "PRECIP", Role: RoleMeasurement},
	}
}

// RoleOf returns the role of the first rule whose substring occurs in name,
// ignoring case.
func (rs RuleSet) RoleOf(name string) Role {
	upper := strings.ToUpper(name)
	for _, r := range rs {
		if strings.Contains(upper, strings.ToUpper(r.Substring)) {
			return r.Role
		}
	}
	return RoleNone
}

// ColumnsWithRole returns the names of frame columns carrying the role, in
// schema order.
func (rs RuleSet) ColumnsWithRole(f *frame.Frame, role Role) []string {
	var names []string
	for _, cs := range f.Schema().Columns {
		if rs.RoleOf(cs.Name) == role {
			names = append(names, cs.Name)
		}
	}
	return names
}
