package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/caprock-civil/backoffice-cli/internal/compliance"
	"github.com/caprock-civil/backoffice-cli/internal/query"
)

func handleListDQF(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f := query.Filter{
			Query:      r.URL.Query().Get("q"),
			Categories: map[string]string{"status": r.URL.Query().Get("status")},
		}
		records := query.Apply(deps.Compliance.DQF(r.Context()), f,
			compliance.DQFTextFields, compliance.DQFCategoryFields)
		writeJSON(w, records)
	}
}

func handleDQFDocuments(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		writeJSON(w, deps.Compliance.DQFDocuments(r.Context(), id))
	}
}

func handleListCertifications(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, deps.Compliance.Certifications(r.Context()))
	}
}

func handleComplianceStats(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		summary := compliance.Summarize(
			deps.Compliance.DQF(ctx),
			deps.Compliance.Certifications(ctx),
			time.Now())
		writeJSON(w, summary)
	}
}

func handleListCrew(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f := query.Filter{
			Query: r.URL.Query().Get("q"),
			Categories: map[string]string{
				"trade": r.URL.Query().Get("trade"),
				"crew":  r.URL.Query().Get("crew"),
			},
		}
		crew := query.Apply(deps.Compliance.Crew(r.Context()), f,
			compliance.CrewTextFields, compliance.CrewCategoryFields)
		writeJSON(w, crew)
	}
}
