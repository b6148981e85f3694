// Package server exposes the dashboard data over HTTP for the web frontends.
package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/caprock-civil/backoffice-cli/internal/bids"
	"github.com/caprock-civil/backoffice-cli/internal/collection"
	"github.com/caprock-civil/backoffice-cli/internal/compliance"
	"github.com/caprock-civil/backoffice-cli/internal/fleet"
	"github.com/caprock-civil/backoffice-cli/internal/payroll"
	"github.com/caprock-civil/backoffice-cli/internal/specsearch"
)

const maxRequestBodySize = 1 << 20 // 1MB

// Deps carries the services the handlers need.
type Deps struct {
	Payroll        *payroll.Service
	Fleet          *fleet.Service
	Compliance     *compliance.Service
	Haul           *bids.Calculator
	Routes         *collection.Set[bids.Route] // nil falls back to the built-in routes
	Catalog        []specsearch.Section
	Recent         *specsearch.RecentStore // optional; recent searches disabled when nil
	AllowedOrigins []string
}

// NewHandler builds the API router.
func NewHandler(deps Deps) http.Handler {
	if deps.Routes == nil {
		deps.Routes = bids.NewRouteSet()
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	origins := deps.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Route("/payrolls", func(r chi.Router) {
			r.Get("/", handleListPayrolls(deps))
			r.Get("/stats", handlePayrollStats(deps))
			r.Post("/generate", handleGeneratePayroll(deps))
			r.Get("/{id}/lines", handlePayrollLines(deps))
			r.Patch("/{id}/status", handlePayrollStatus(deps))
			r.Delete("/{id}", handleDeletePayroll(deps))
			r.Get("/{id}/export", handlePayrollExport(deps))
		})

		r.Route("/fleet", func(r chi.Router) {
			r.Get("/equipment", handleListEquipment(deps))
			r.Get("/equipment/{id}/directions", handleEquipmentDirections(deps))
			r.Get("/stats", handleFleetStats(deps))
			r.Get("/fuel", handleListFuel(deps))
			r.Get("/maintenance", handleListMaintenance(deps))
		})

		r.Route("/compliance", func(r chi.Router) {
			r.Get("/dqf", handleListDQF(deps))
			r.Get("/dqf/{id}/documents", handleDQFDocuments(deps))
			r.Get("/certifications", handleListCertifications(deps))
			r.Get("/stats", handleComplianceStats(deps))
			r.Get("/crew", handleListCrew(deps))
		})

		r.Route("/bids", func(r chi.Router) {
			r.Post("/dbe", handleDBE(deps))
			r.Post("/haul", handleHaul(deps))
			r.Get("/haul/routes", handleHaulRoutes(deps))
			r.Post("/haul/routes", handleAddHaulRoute(deps))
		})

		r.Route("/spec-search", func(r chi.Router) {
			r.Get("/", handleSpecSearch(deps))
			r.Get("/recent", handleRecentSearches(deps))
		})
	})

	return r
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func httpError(w http.ResponseWriter, code int, errType string, format string, args ...any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	msg := fmt.Sprintf(format, args...)
	json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]any{
			"message": msg,
			"type":    errType,
		},
	})
}
