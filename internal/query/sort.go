package query

import "sort"

// SortBy returns a copy of recs stably sorted ascending by the numeric key.
// Ties keep their original relative order; several dashboards rely on that
// for deterministic output.
func SortBy[T any](recs []T, key func(T) float64) []T {
	out := make([]T, len(recs))
	copy(out, recs)
	sort.SliceStable(out, func(i, j int) bool {
		return key(out[i]) < key(out[j])
	})
	return out
}

// Grouped holds a partition of records with deterministic iteration order.
type Grouped[T any] struct {
	Keys   []string       `json:"keys"` // first-seen order
	Groups map[string][]T `json:"groups"`
}

// GroupBy partitions recs by key, preserving first-seen order of keys and
// within-group insertion order.
func GroupBy[T any](recs []T, key func(T) string) Grouped[T] {
	g := Grouped[T]{Groups: make(map[string][]T)}
	for _, rec := range recs {
		k := key(rec)
		if _, seen := g.Groups[k]; !seen {
			g.Keys = append(g.Keys, k)
		}
		g.Groups[k] = append(g.Groups[k], rec)
	}
	return g
}
