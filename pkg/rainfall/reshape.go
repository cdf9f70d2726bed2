package rainfall

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/wdm0006/monsoon/pkg/frame"
)

// ErrMissingColumns reports that the wide table lacks the identifying
// subdivision/year columns or one of the twelve month columns. Reshaping is
// all-or-nothing; there is no partial melt.
var ErrMissingColumns = errors.New("rainfall: required columns missing")

// Melt converts a wide frame (one row per subdivision+year, one column per
// month) into long records, one per subdivision+year+month, in canonical
// order. Header matching is case-insensitive. The second return is the
// number of missing rainfall cells encountered.
func Melt(f *frame.Frame) ([]LongRecord, int, error) {
	if f == nil {
		return nil, 0, fmt.Errorf("%w: no input", ErrMissingColumns)
	}

	byLower := make(map[string]string, len(f.Schema().Columns))
	for _, cs := range f.Schema().Columns {
		byLower[strings.ToLower(cs.Name)] = cs.Name
	}

	subName, okSub := byLower["subdivision"]
	yearName, okYear := byLower["year"]
	if !okSub || !okYear {
		return nil, 0, fmt.Errorf("%w: need subdivision and year", ErrMissingColumns)
	}
	monthNames := make([]string, len(Months))
	for i, m := range Months {
		name, ok := byLower[m]
		if !ok {
			return nil, 0, fmt.Errorf("%w: need month column %s", ErrMissingColumns, m)
		}
		monthNames[i] = name
	}

	subCol, ok := mustString(f, subName)
	if !ok {
		return nil, 0, fmt.Errorf("%w: subdivision must be text", ErrMissingColumns)
	}

	recs := make([]LongRecord, 0, f.Rows()*len(Months))
	missing := 0
	for r := 0; r < f.Rows(); r++ {
		sub, okS := subCol.Get(r)
		yearF, okY := f.FloatAt(yearName, r)
		if !okS || !okY {
			continue
		}
		year := int(yearF)
		for i, colName := range monthNames {
			rec := LongRecord{
				Subdivision: sub,
				Year:        year,
				Month:       Months[i],
				MonthNum:    i + 1,
				Date:        time.Date(year, time.Month(i+1), 1, 0, 0, 0, 0, time.UTC),
				Season:      SeasonOf(i + 1),
			}
			if v, ok := f.FloatAt(colName, r); ok {
				rec.Rainfall = fptr(v)
			} else {
				missing++
			}
			recs = append(recs, rec)
		}
	}
	SortRecords(recs)
	return recs, missing, nil
}

func mustString(f *frame.Frame, name string) (*frame.StringColumn, bool) {
	col, ok := f.ColumnByName(name)
	if !ok {
		return nil, false
	}
	c, ok := col.(*frame.StringColumn)
	return c, ok
}
