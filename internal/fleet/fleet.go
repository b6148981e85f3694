// Package fleet implements the equipment fleet dashboard: the fleet
// overview, fuel cards and transactions, maintenance, and inspections.
package fleet

import (
	"context"
	"time"
)

// Equipment statuses as reported by v_equipment_fleet_overview.
const (
	EquipStatusActive      = "active"
	EquipStatusIdle        = "idle"
	EquipStatusMaintenance = "maintenance"
	EquipStatusDown        = "down"
)

// Maintenance statuses.
const (
	MaintStatusScheduled  = "scheduled"
	MaintStatusInProgress = "in_progress"
	MaintStatusCompleted  = "completed"
	MaintStatusOverdue    = "overdue"
)

// Equipment is one fleet unit from v_equipment_fleet_overview.
type Equipment struct {
	ID             string  `json:"id"`
	UnitNumber     string  `json:"unit_number"`
	Name           string  `json:"name"`
	Category       string  `json:"category"`
	Status         string  `json:"status"`
	Operator       string  `json:"operator"`
	HoursMeter     float64 `json:"hours_meter"`
	UtilizationPct float64 `json:"utilization_pct"`
	Location       string  `json:"location"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
}

// FuelCard is an issued fuel card from fuel_cards.
type FuelCard struct {
	ID           string  `json:"id"`
	CardNumber   string  `json:"card_number"`
	AssignedTo   string  `json:"assigned_to"`
	Status       string  `json:"status"`
	MonthlyLimit float64 `json:"monthly_limit"`
}

// FuelTransaction is one fuel purchase from fuel_transactions.
type FuelTransaction struct {
	ID             string    `json:"id"`
	CardID         string    `json:"card_id"`
	UnitNumber     string    `json:"unit_number"`
	Driver         string    `json:"driver"`
	Date           time.Time `json:"date"`
	Gallons        float64   `json:"gallons"`
	PricePerGallon float64   `json:"price_per_gallon"`
	Total          float64   `json:"total"`
	Vendor         string    `json:"vendor"`
}

// Maintenance is an open work item from equipment_maintenance.
type Maintenance struct {
	ID          string    `json:"id"`
	UnitNumber  string    `json:"unit_number"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	DueDate     time.Time `json:"due_date"`
	Cost        float64   `json:"cost"`
}

// MaintenanceRecord is a completed history entry from maintenance_records,
// loaded lazily for the selected unit.
type MaintenanceRecord struct {
	ID          string    `json:"id"`
	UnitNumber  string    `json:"unit_number"`
	CompletedAt time.Time `json:"completed_at"`
	Description string    `json:"description"`
	Vendor      string    `json:"vendor"`
	Cost        float64   `json:"cost"`
}

// Inspection is one vehicle inspection from vehicle_inspections.
type Inspection struct {
	ID          string    `json:"id"`
	UnitNumber  string    `json:"unit_number"`
	Date        time.Time `json:"date"`
	Inspector   string    `json:"inspector"`
	Passed      bool      `json:"passed"`
	DefectCount int       `json:"defect_count"`
	Notes       string    `json:"notes"`
}

// Store defines persistence for the fleet dashboard.
type Store interface {
	ListEquipment(ctx context.Context) ([]Equipment, error)
	ListFuelCards(ctx context.Context) ([]FuelCard, error)
	ListFuelTransactions(ctx context.Context) ([]FuelTransaction, error)
	ListMaintenance(ctx context.Context) ([]Maintenance, error)
	ListMaintenanceHistory(ctx context.Context, unitNumber string) ([]MaintenanceRecord, error)
	ListInspections(ctx context.Context) ([]Inspection, error)
}
