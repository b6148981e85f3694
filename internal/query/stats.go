package query

// Percent returns 100*num/den rounded to one decimal place, or 0 when the
// denominator is 0. KPI cards render the zero rather than a NaN.
func Percent(num, den int) float64 {
	if den == 0 {
		return 0
	}
	p := float64(num) / float64(den) * 100
	return float64(int(p*10+0.5)) / 10
}

// CountBy tallies records per key (typically a status or category field).
func CountBy[T any](recs []T, key func(T) string) map[string]int {
	counts := make(map[string]int)
	for _, rec := range recs {
		counts[key(rec)]++
	}
	return counts
}

// SumBy totals a numeric field over the full record slice.
func SumBy[T any](recs []T, val func(T) float64) float64 {
	var sum float64
	for _, rec := range recs {
		sum += val(rec)
	}
	return sum
}
