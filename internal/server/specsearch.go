package server

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/caprock-civil/backoffice-cli/internal/specsearch"
)

func handleSpecSearch(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := strings.TrimSpace(r.URL.Query().Get("q"))

		results := specsearch.Search(deps.Catalog, q)
		if results == nil {
			results = []specsearch.Result{}
		}

		if q != "" && deps.Recent != nil {
			if err := deps.Recent.Add(r.Context(), q); err != nil {
				zap.L().Warn("recording recent search failed", zap.Error(err))
			}
		}

		writeJSON(w, results)
	}
}

func handleRecentSearches(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if deps.Recent == nil {
			writeJSON(w, []string{})
			return
		}
		queries, err := deps.Recent.Recent(r.Context())
		if err != nil {
			httpError(w, http.StatusInternalServerError, "api_error", "failed to list recent searches: %v", err)
			return
		}
		if queries == nil {
			queries = []string{}
		}
		writeJSON(w, queries)
	}
}
