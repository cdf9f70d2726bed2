package rainfall

import (
	"sort"
	"strconv"

	"github.com/montanaflynn/stats"
)

// Summary holds the five descriptive statistics used throughout the repo.
// StdDev uses sample (n-1) semantics; it is NaN for a single observation.
type Summary struct {
	Count  int
	Mean   float64
	Median float64
	Min    float64
	Max    float64
	StdDev float64
}

// StatsRow pairs a grouping key (month, season, or year) with its summary.
// Valid is false for a group with no observed values; its statistics are
// undefined rather than zero.
type StatsRow struct {
	Key   string
	Valid bool
	Summary
}

// Describe computes the five statistics over vals. Returns false for an
// empty input.
func Describe(vals []float64) (Summary, bool) {
	if len(vals) == 0 {
		return Summary{}, false
	}
	mean, _ := stats.Mean(vals)
	median, _ := stats.Median(vals)
	min, _ := stats.Min(vals)
	max, _ := stats.Max(vals)
	sd, _ := stats.StandardDeviationSample(vals)
	return Summary{
		Count:  len(vals),
		Mean:   mean,
		Median: median,
		Min:    min,
		Max:    max,
		StdDev: sd,
	}, true
}

// MonthlyStats groups observed rainfall by month, in calendar order.
func MonthlyStats(recs []LongRecord) []StatsRow {
	byMonth := make(map[string][]float64, len(Months))
	for _, r := range recs {
		if r.Rainfall != nil {
			byMonth[r.Month] = append(byMonth[r.Month], *r.Rainfall)
		}
	}
	rows := make([]StatsRow, 0, len(Months))
	for _, m := range Months {
		s, ok := Describe(byMonth[m])
		rows = append(rows, StatsRow{Key: m, Valid: ok, Summary: s})
	}
	return rows
}

// SeasonalStats groups seasonal totals by season, in reporting order.
func SeasonalStats(seasonal []SeasonalRecord) []StatsRow {
	bySeason := make(map[string][]float64, len(Seasons))
	for _, r := range seasonal {
		bySeason[r.Season] = append(bySeason[r.Season], r.Rainfall)
	}
	rows := make([]StatsRow, 0, len(Seasons))
	for _, s := range Seasons {
		sum, ok := Describe(bySeason[s])
		rows = append(rows, StatsRow{Key: s, Valid: ok, Summary: sum})
	}
	return rows
}

// YearlyStats sums rainfall per subdivision+year and then summarizes those
// sums per year, ascending.
func YearlyStats(recs []LongRecord) []StatsRow {
	byYear := YearlyTotals(recs)
	years := make([]int, 0, len(byYear))
	for y := range byYear {
		years = append(years, y)
	}
	sort.Ints(years)
	rows := make([]StatsRow, 0, len(years))
	for _, y := range years {
		s, ok := Describe(byYear[y])
		rows = append(rows, StatsRow{Key: strconv.Itoa(y), Valid: ok, Summary: s})
	}
	return rows
}
