package rainfall

import "sort"

type yearKey struct {
	subdivision string
	monthNum    int
	year        int
}

// AddYoY fills PrevYear, YoYChange and YoYChangePct in place. PrevYear is
// the rainfall at exactly year-1 for the same (subdivision, month); the
// first year of a series has none. Missing inputs and a zero previous value
// leave the derived fields nil.
func AddYoY(recs []LongRecord) {
	byYear := make(map[yearKey]*float64, len(recs))
	for _, r := range recs {
		byYear[yearKey{r.Subdivision, r.MonthNum, r.Year}] = r.Rainfall
	}

	for i := range recs {
		r := &recs[i]
		prev, ok := byYear[yearKey{r.Subdivision, r.MonthNum, r.Year - 1}]
		if !ok || prev == nil {
			r.PrevYear = nil
			r.YoYChange = nil
			r.YoYChangePct = nil
			continue
		}
		r.PrevYear = fptr(*prev)
		if r.Rainfall == nil {
			r.YoYChange = nil
			r.YoYChangePct = nil
			continue
		}
		r.YoYChange = fptr(*r.Rainfall - *prev)
		if *prev == 0 {
			r.YoYChangePct = nil
			continue
		}
		r.YoYChangePct = fptr(*r.YoYChange / *prev * 100)
	}
}

// SeasonalTotals sums rainfall within each (subdivision, year, season).
// Missing monthly values contribute nothing to the sum. Output is ordered by
// subdivision, year, then season reporting order.
func SeasonalTotals(recs []LongRecord) []SeasonalRecord {
	type seasonKey struct {
		subdivision string
		year        int
		season      string
	}
	totals := make(map[seasonKey]float64)
	for _, r := range recs {
		k := seasonKey{r.Subdivision, r.Year, r.Season}
		if _, ok := totals[k]; !ok {
			totals[k] = 0
		}
		if r.Rainfall != nil {
			totals[k] += *r.Rainfall
		}
	}

	seasonRank := make(map[string]int, len(Seasons))
	for i, s := range Seasons {
		seasonRank[s] = i
	}

	out := make([]SeasonalRecord, 0, len(totals))
	for k, v := range totals {
		out = append(out, SeasonalRecord{Subdivision: k.subdivision, Year: k.year, Season: k.season, Rainfall: v})
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Subdivision != b.Subdivision {
			return a.Subdivision < b.Subdivision
		}
		if a.Year != b.Year {
			return a.Year < b.Year
		}
		return seasonRank[a.Season] < seasonRank[b.Season]
	})
	return out
}

// YearlyTotals sums rainfall per (subdivision, year), then returns the
// per-year slices of those subdivision sums, keyed by year. Used by the
// yearly statistics reduction and the trend chart.
func YearlyTotals(recs []LongRecord) map[int][]float64 {
	type subYear struct {
		subdivision string
		year        int
	}
	sums := make(map[subYear]float64)
	for _, r := range recs {
		if r.Rainfall == nil {
			continue
		}
		k := subYear{r.Subdivision, r.Year}
		sums[k] += *r.Rainfall
	}
	byYear := make(map[int][]float64)
	for k, v := range sums {
		byYear[k.year] = append(byYear[k.year], v)
	}
	return byYear
}
