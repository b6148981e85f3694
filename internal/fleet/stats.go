package fleet

import (
	"github.com/shopspring/decimal"

	"github.com/caprock-civil/backoffice-cli/internal/query"
)

// Summary feeds the fleet KPI cards. Computed over the full unfiltered
// collection; the visible list may be filtered independently.
type Summary struct {
	TotalUnits     int            `json:"total_units"`
	ByStatus       map[string]int `json:"by_status"`
	UtilizationPct float64        `json:"utilization_pct"`
	MaintenanceDue int            `json:"maintenance_due"`
	FuelSpend      string         `json:"fuel_spend"`
}

// Summarize reduces the fleet lists into the KPI summary. Safe on empty
// input: zero counts and 0% utilization, never NaN.
func Summarize(equipment []Equipment, maintenance []Maintenance, fuel []FuelTransaction) Summary {
	byStatus := query.CountBy(equipment, func(e Equipment) string { return e.Status })

	due := 0
	for _, m := range maintenance {
		if m.Status == MaintStatusScheduled || m.Status == MaintStatusOverdue {
			due++
		}
	}

	spend := decimal.Zero
	for _, tx := range fuel {
		spend = spend.Add(decimal.NewFromFloat(tx.Total))
	}

	var utilization float64
	if len(equipment) > 0 {
		utilization = query.SumBy(equipment, func(e Equipment) float64 { return e.UtilizationPct }) / float64(len(equipment))
	}

	return Summary{
		TotalUnits:     len(equipment),
		ByStatus:       byStatus,
		UtilizationPct: utilization,
		MaintenanceDue: due,
		FuelSpend:      spend.StringFixed(2),
	}
}

// FuelSummary is recomputed from the filtered transaction subset. This is
// the one fleet card documented as "stat reflects current filter".
type FuelSummary struct {
	Transactions int     `json:"transactions"`
	Gallons      float64 `json:"gallons"`
	Spend        string  `json:"spend"`
}

// SummarizeFuel reduces a (possibly filtered) transaction list.
func SummarizeFuel(fuel []FuelTransaction) FuelSummary {
	spend := decimal.Zero
	for _, tx := range fuel {
		spend = spend.Add(decimal.NewFromFloat(tx.Total))
	}
	return FuelSummary{
		Transactions: len(fuel),
		Gallons:      query.SumBy(fuel, func(t FuelTransaction) float64 { return t.Gallons }),
		Spend:        spend.StringFixed(2),
	}
}

// EquipmentTextFields returns the fields searched by the free-text query.
func EquipmentTextFields(e Equipment) []string {
	return []string{e.UnitNumber, e.Name, e.Operator, e.Location}
}

// EquipmentCategoryFields returns the categorical filter values.
func EquipmentCategoryFields(e Equipment) map[string]string {
	return map[string]string{"status": e.Status, "category": e.Category}
}

// FuelTextFields returns the fields searched by the free-text query.
func FuelTextFields(t FuelTransaction) []string {
	return []string{t.UnitNumber, t.Driver, t.Vendor}
}

// FuelCategoryFields returns the categorical filter values.
func FuelCategoryFields(t FuelTransaction) map[string]string {
	return map[string]string{"card": t.CardID}
}
