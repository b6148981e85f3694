package specsearch

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/caprock-civil/backoffice-cli/internal/query"
)

// Result is one scored catalog hit.
type Result struct {
	Section         Section  `json:"section"`
	Score           int      `json:"score"`
	MatchedKeywords []string `json:"matched_keywords"`
}

var fold = cases.Fold()

// tokenize splits a query or title into lowercase word tokens.
func tokenize(s string) []string {
	return strings.FieldsFunc(fold.String(s), func(r rune) bool {
		return !('a' <= r && r <= 'z' || '0' <= r && r <= '9')
	})
}

// Search scores every catalog section against the query and returns the hits
// ordered best first. A section scores one point per query token found in its
// title and two per matched keyword; sections scoring zero are omitted. Ties
// keep catalog order.
func Search(catalog []Section, q string) []Result {
	tokens := tokenize(q)
	if len(tokens) == 0 {
		return nil
	}

	var results []Result
	for _, sec := range catalog {
		score := 0
		var matched []string

		titleTokens := map[string]bool{}
		for _, t := range tokenize(sec.Title) {
			titleTokens[t] = true
		}
		for _, t := range tokens {
			if titleTokens[t] {
				score++
			}
		}

		for _, kw := range sec.Keywords {
			folded := fold.String(kw)
			for _, t := range tokens {
				if strings.Contains(folded, t) || strings.Contains(t, folded) {
					score += 2
					matched = append(matched, kw)
					break
				}
			}
		}

		if score > 0 {
			results = append(results, Result{Section: sec, Score: score, MatchedKeywords: matched})
		}
	}

	return query.SortBy(results, func(r Result) float64 { return -float64(r.Score) })
}
