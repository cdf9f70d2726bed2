// Package rainfall reshapes wide subdivision/year rainfall tables into long
// monthly series and derives seasonal and year-over-year metrics from them.
package rainfall

import (
	"sort"
	"time"
)

// Months in calendar order, lowercase three-letter abbreviations. These are
// the wide-table column names after header normalization; month_num is the
// 1-based position in this slice.
var Months = []string{"jan", "feb", "mar", "apr", "may", "jun", "jul", "aug", "sep", "oct", "nov", "dec"}

// Seasons in reporting order.
var Seasons = []string{"Winter", "Spring", "Summer", "Autumn"}

// SeasonOf maps a month number (1-12) to its fixed three-month season.
func SeasonOf(monthNum int) string {
	switch monthNum {
	case 12, 1, 2:
		return "Winter"
	case 3, 4, 5:
		return "Spring"
	case 6, 7, 8:
		return "Summer"
	default:
		return "Autumn"
	}
}

// LongRecord is one subdivision's rainfall for one calendar month of one
// year. Nullable fields are pointers: nil means missing. Rainfall may be nil
// before imputation; the derived YoY fields stay nil when their inputs are
// missing or undefined.
type LongRecord struct {
	Subdivision  string
	Year         int
	Month        string
	MonthNum     int
	Rainfall     *float64
	Date         time.Time
	Season       string
	PrevYear     *float64
	YoYChange    *float64
	YoYChangePct *float64
}

// SeasonalRecord is the summed rainfall of one season of one year for one
// subdivision.
type SeasonalRecord struct {
	Subdivision string
	Year        int
	Season      string
	Rainfall    float64
}

// SortRecords puts records into canonical (subdivision, year, month_num)
// order.
func SortRecords(recs []LongRecord) {
	sort.SliceStable(recs, func(i, j int) bool {
		a, b := recs[i], recs[j]
		if a.Subdivision != b.Subdivision {
			return a.Subdivision < b.Subdivision
		}
		if a.Year != b.Year {
			return a.Year < b.Year
		}
		return a.MonthNum < b.MonthNum
	})
}

func fptr(v float64) *float64 { return &v }
