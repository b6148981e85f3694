// Package payroll implements the certified payroll dashboard: weekly
// certified payrolls, their per-employee lines, status actions, and the
// generate call into the Supabase edge function.
package payroll

import (
	"context"
	"time"
)

// Status is the certified payroll lifecycle label. Transitions are driven
// by explicit user actions only; any status may be set by an action that
// chooses to set it.
type Status string

const (
	StatusDraft     Status = "DRAFT"
	StatusGenerated Status = "GENERATED"
	StatusReviewed  Status = "REVIEWED"
	StatusCertified Status = "CERTIFIED"
	StatusSubmitted Status = "SUBMITTED"
	StatusAccepted  Status = "ACCEPTED"
	StatusRejected  Status = "REJECTED"
)

// CertifiedPayroll is one weekly certified payroll, normalized for display.
type CertifiedPayroll struct {
	ID             string    `json:"id"`
	PayrollNumber  string    `json:"payroll_number"`
	ProjectID      string    `json:"project_id"`
	ProjectName    string    `json:"project_name"`
	ContractNumber string    `json:"contract_number"`
	WeekEnding     time.Time `json:"week_ending"`
	Status         Status    `json:"status"`
	EmployeeCount  int       `json:"employee_count"`
	TotalHours     float64   `json:"total_hours"`
	TotalGross     float64   `json:"total_gross"`
	CreatedAt      time.Time `json:"created_at"`
}

// Line is one employee row on a certified payroll. Lines are loaded lazily
// when their parent payroll is selected.
type Line struct {
	ID             string  `json:"id"`
	PayrollID      string  `json:"payroll_id"`
	EmployeeName   string  `json:"employee_name"`
	Classification string  `json:"classification"`
	HoursST        float64 `json:"hours_st"`
	HoursOT        float64 `json:"hours_ot"`
	RateST         float64 `json:"rate_st"`
	RateOT         float64 `json:"rate_ot"`
	GrossPay       float64 `json:"gross_pay"`
	FringeBenefits float64 `json:"fringe_benefits"`
}

// Store defines persistence for certified payrolls.
type Store interface {
	ListPayrolls(ctx context.Context) ([]CertifiedPayroll, error)
	ListLines(ctx context.Context, payrollID string) ([]Line, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
	DeletePayroll(ctx context.Context, id string) error
}
