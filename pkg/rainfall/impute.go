package rainfall

type groupKey struct {
	subdivision string
	monthNum    int
}

// ImputeGroupMean fills missing rainfall values in place with the mean of
// the non-missing values for the same (subdivision, month) across years. A
// group with no observed values at all is left missing; there is no global
// fallback. Running it again on filled data changes nothing. Returns the
// number of values filled.
func ImputeGroupMean(recs []LongRecord) int {
	sums := make(map[groupKey]float64)
	counts := make(map[groupKey]int)
	for _, r := range recs {
		if r.Rainfall == nil {
			continue
		}
		k := groupKey{r.Subdivision, r.MonthNum}
		sums[k] += *r.Rainfall
		counts[k]++
	}

	filled := 0
	for i := range recs {
		if recs[i].Rainfall != nil {
			continue
		}
		k := groupKey{recs[i].Subdivision, recs[i].MonthNum}
		n := counts[k]
		if n == 0 {
			continue
		}
		recs[i].Rainfall = fptr(sums[k] / float64(n))
		filled++
	}
	return filled
}
