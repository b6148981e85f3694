package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/caprock-civil/backoffice-cli/internal/query"
)

// Summary feeds the payroll KPI cards. Computed over the full unfiltered
// collection; list filters do not affect it.
type Summary struct {
	Total         int            `json:"total"`
	ByStatus      map[string]int `json:"by_status"`
	PendingReview int            `json:"pending_review"`
	Submitted     int            `json:"submitted"`
	TotalGross    string         `json:"total_gross"`
	TotalHours    float64        `json:"total_hours"`
	AcceptancePct float64        `json:"acceptance_pct"`
}

// Summarize reduces payrolls into the KPI summary. Safe on an empty slice:
// all counts zero, percentages 0 rather than NaN.
func Summarize(payrolls []CertifiedPayroll) Summary {
	byStatus := query.CountBy(payrolls, func(p CertifiedPayroll) string { return string(p.Status) })

	gross := decimal.Zero
	for _, p := range payrolls {
		gross = gross.Add(decimal.NewFromFloat(p.TotalGross))
	}

	decided := byStatus[string(StatusAccepted)] + byStatus[string(StatusRejected)]

	return Summary{
		Total:         len(payrolls),
		ByStatus:      byStatus,
		PendingReview: byStatus[string(StatusGenerated)] + byStatus[string(StatusReviewed)],
		Submitted:     byStatus[string(StatusSubmitted)],
		TotalGross:    gross.StringFixed(2),
		TotalHours:    query.SumBy(payrolls, func(p CertifiedPayroll) float64 { return p.TotalHours }),
		AcceptancePct: query.Percent(byStatus[string(StatusAccepted)], decided),
	}
}

// TextFields returns the payroll fields searched by the free-text query.
func TextFields(p CertifiedPayroll) []string {
	return []string{p.PayrollNumber, p.ProjectName, p.ContractNumber}
}

// CategoryFields returns the payroll's categorical filter values.
func CategoryFields(p CertifiedPayroll) map[string]string {
	return map[string]string{"status": string(p.Status), "project": p.ProjectID}
}
