package server

import (
	"encoding/json"
	"net/http"

	"github.com/caprock-civil/backoffice-cli/internal/bids"
	"github.com/caprock-civil/backoffice-cli/internal/collection"
)

func handleDBE(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)

		var in bids.DBEInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			httpError(w, http.StatusBadRequest, "invalid_request_error", "invalid request body: %v", err)
			return
		}
		writeJSON(w, bids.CalculateDBE(in))
	}
}

func handleHaul(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)

		var in bids.HaulInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			httpError(w, http.StatusBadRequest, "invalid_request_error", "invalid request body: %v", err)
			return
		}
		writeJSON(w, deps.Haul.Haul(in))
	}
}

func handleHaulRoutes(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, bids.SortRoutes(deps.Routes.Records()))
	}
}

func handleAddHaulRoute(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)

		var route bids.Route
		if err := json.NewDecoder(r.Body).Decode(&route); err != nil {
			httpError(w, http.StatusBadRequest, "invalid_request_error", "invalid request body: %v", err)
			return
		}
		if route.Name == "" {
			httpError(w, http.StatusBadRequest, "invalid_request_error", "name is required")
			return
		}
		if route.ID == "" {
			route.ID = collection.NewID()
		}

		outcome, err := deps.Routes.Add(r.Context(), route)
		if err != nil {
			httpError(w, http.StatusBadRequest, "invalid_request_error", "add route failed: %v", err)
			return
		}
		writeJSON(w, map[string]any{"route": route, "outcome": outcome})
	}
}
