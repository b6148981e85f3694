package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/caprock-civil/backoffice-cli/internal/payroll"
	"github.com/caprock-civil/backoffice-cli/internal/query"
)

func payrollFilter(r *http.Request) query.Filter {
	return query.Filter{
		Query:      r.URL.Query().Get("q"),
		Categories: map[string]string{"status": r.URL.Query().Get("status")},
	}
}

func handleListPayrolls(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payrolls := deps.Payroll.List(r.Context())
		filtered := query.Apply(payrolls, payrollFilter(r), payroll.TextFields, payroll.CategoryFields)
		writeJSON(w, filtered)
	}
}

func handlePayrollStats(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, deps.Payroll.Stats(r.Context()))
	}
}

func handlePayrollLines(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		writeJSON(w, deps.Payroll.Lines(r.Context(), id))
	}
}

func handleGeneratePayroll(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)

		var req struct {
			ProjectID      string `json:"project_id"`
			WeekEndingDate string `json:"week_ending_date"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpError(w, http.StatusBadRequest, "invalid_request_error", "invalid request body: %v", err)
			return
		}
		if req.ProjectID == "" || req.WeekEndingDate == "" {
			httpError(w, http.StatusBadRequest, "invalid_request_error", "project_id and week_ending_date are required")
			return
		}

		number, err := deps.Payroll.Generate(r.Context(), req.ProjectID, req.WeekEndingDate)
		if err != nil {
			httpError(w, http.StatusBadGateway, "api_error", "generate failed: %v", err)
			return
		}
		writeJSON(w, map[string]any{"success": true, "payroll_number": number})
	}
}

func handlePayrollStatus(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
		id := chi.URLParam(r, "id")

		var req struct {
			Status string `json:"status"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpError(w, http.StatusBadRequest, "invalid_request_error", "invalid request body: %v", err)
			return
		}

		if err := deps.Payroll.SetStatus(r.Context(), id, payroll.Status(req.Status)); err != nil {
			httpError(w, http.StatusBadRequest, "invalid_request_error", "status update failed: %v", err)
			return
		}
		writeJSON(w, map[string]string{"status": "updated"})
	}
}

func handleDeletePayroll(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		if err := deps.Payroll.Delete(r.Context(), id); err != nil {
			httpError(w, http.StatusInternalServerError, "api_error", "delete failed: %v", err)
			return
		}
		writeJSON(w, map[string]string{"status": "deleted"})
	}
}

func handlePayrollExport(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var target *payroll.CertifiedPayroll
		for _, p := range deps.Payroll.List(r.Context()) {
			if p.ID == id {
				target = &p
				break
			}
		}
		if target == nil {
			httpError(w, http.StatusNotFound, "not_found", "payroll not found")
			return
		}

		lines := deps.Payroll.Lines(r.Context(), id)

		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition",
			fmt.Sprintf("attachment; filename=%q", target.PayrollNumber+".xlsx"))
		if err := payroll.WriteXLSX(*target, lines, w); err != nil {
			httpError(w, http.StatusInternalServerError, "api_error", "export failed: %v", err)
		}
	}
}
