// Package query implements the list pipeline shared by every dashboard:
// free-text search, categorical filters, stable sorting, and grouping.
package query

import (
	"strings"

	"golang.org/x/text/cases"
)

// All is the categorical filter sentinel meaning "unfiltered".
const All = "all"

// Filter captures a dashboard's search and filter controls. A zero Filter
// matches every record.
type Filter struct {
	Query      string
	Categories map[string]string // filter name -> selected value, or All
}

// TextFields returns the record fields searched by the free-text query.
type TextFields[T any] func(T) []string

// CategoryFields returns the record's categorical field values keyed by
// filter name.
type CategoryFields[T any] func(T) map[string]string

var fold = cases.Fold()

// Matches reports whether a record passes the filter. The free-text query is
// a case-insensitive substring match, OR-ed across the text fields; each
// categorical filter is exact equality unless set to All or empty. All
// active predicates must hold.
func Matches[T any](rec T, f Filter, text TextFields[T], cats CategoryFields[T]) bool {
	q := strings.TrimSpace(f.Query)
	if q != "" && text != nil {
		q = fold.String(q)
		hit := false
		for _, field := range text(rec) {
			if strings.Contains(fold.String(field), q) {
				hit = true
				break
			}
		}
		if !hit {
			return false
		}
	}

	if len(f.Categories) > 0 && cats != nil {
		values := cats(rec)
		for name, want := range f.Categories {
			if want == "" || want == All {
				continue
			}
			if values[name] != want {
				return false
			}
		}
	}

	return true
}

// Apply filters a record slice, preserving input order. The result is always
// a subset of the input; a blank query and all-All categories return an
// equal slice.
func Apply[T any](recs []T, f Filter, text TextFields[T], cats CategoryFields[T]) []T {
	out := make([]T, 0, len(recs))
	for _, rec := range recs {
		if Matches(rec, f, text, cats) {
			out = append(out, rec)
		}
	}
	return out
}
