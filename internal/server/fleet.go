package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/caprock-civil/backoffice-cli/internal/fleet"
	"github.com/caprock-civil/backoffice-cli/internal/query"
	"github.com/caprock-civil/backoffice-cli/pkg/maplink"
)

func handleListEquipment(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f := query.Filter{
			Query: r.URL.Query().Get("q"),
			Categories: map[string]string{
				"status":   r.URL.Query().Get("status"),
				"category": r.URL.Query().Get("category"),
			},
		}
		units := query.Apply(deps.Fleet.Equipment(r.Context()), f,
			fleet.EquipmentTextFields, fleet.EquipmentCategoryFields)

		if r.URL.Query().Get("group") != "" {
			writeJSON(w, fleet.GroupedEquipment(units))
			return
		}
		writeJSON(w, units)
	}
}

func handleFleetStats(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d := deps.Fleet.LoadDashboard(r.Context())
		writeJSON(w, d.Summary)
	}
}

func handleListFuel(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f := query.Filter{
			Query:      r.URL.Query().Get("q"),
			Categories: map[string]string{"card": r.URL.Query().Get("card")},
		}
		txs := query.Apply(deps.Fleet.FuelTransactions(r.Context()), f,
			fleet.FuelTextFields, fleet.FuelCategoryFields)

		writeJSON(w, map[string]any{
			"transactions": txs,
			"summary":      fleet.SummarizeFuel(txs),
		})
	}
}

// handleEquipmentDirections returns a maps link to the unit's last known
// location, for the "open in maps" action on the fleet map.
func handleEquipmentDirections(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		for _, e := range deps.Fleet.Equipment(r.Context()) {
			if e.ID == id {
				writeJSON(w, map[string]string{"url": maplink.Directions(e.Latitude, e.Longitude)})
				return
			}
		}
		httpError(w, http.StatusNotFound, "not_found", "equipment not found")
	}
}

func handleListMaintenance(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, deps.Fleet.Maintenance(r.Context()))
	}
}
