// Package compliance implements the workforce compliance dashboard: DQF
// status, employee certifications, operator qualifications, and the crew
// roster.
package compliance

import (
	"context"
	"time"
)

// DQF compliance statuses as reported by v_dqf_compliance.
const (
	DQFCompliant    = "compliant"
	DQFExpiringSoon = "expiring_soon"
	DQFExpired      = "expired"
	DQFIncomplete   = "incomplete"
)

// CrewMember is one row of v_crew_roster.
type CrewMember struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Trade     string `json:"trade"`
	Crew      string `json:"crew"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	IsForeman bool   `json:"is_foreman"`
}

// Certification is one row of employee_certifications.
type Certification struct {
	ID           string    `json:"id"`
	EmployeeID   string    `json:"employee_id"`
	EmployeeName string    `json:"employee_name"`
	Name         string    `json:"name"`
	Authority    string    `json:"authority"`
	IssuedDate   time.Time `json:"issued_date"`
	ExpiryDate   time.Time `json:"expiry_date"`
}

// DQFRecord is one driver qualification file row from v_dqf_compliance.
type DQFRecord struct {
	ID          string    `json:"id"`
	DriverName  string    `json:"driver_name"`
	CDLClass    string    `json:"cdl_class"`
	Status      string    `json:"status"`
	MissingDocs int       `json:"missing_docs"`
	NextDueDate time.Time `json:"next_due_date"`
}

// DQFDocument is one file in a driver's qualification folder, loaded when
// the driver is selected.
type DQFDocument struct {
	ID         string    `json:"id"`
	DQFID      string    `json:"dqf_id"`
	Type       string    `json:"type"`
	FileName   string    `json:"file_name"`
	ExpiryDate time.Time `json:"expiry_date"`
	Verified   bool      `json:"verified"`
}

// OperatorQualification is one row of operator_qualifications.
type OperatorQualification struct {
	ID           string    `json:"id"`
	OperatorName string    `json:"operator_name"`
	Equipment    string    `json:"equipment"`
	Level        string    `json:"level"`
	QualifiedAt  time.Time `json:"qualified_at"`
	ExpiryDate   time.Time `json:"expiry_date"`
}

// Store defines persistence for the compliance dashboard.
type Store interface {
	ListCrew(ctx context.Context) ([]CrewMember, error)
	ListCertifications(ctx context.Context) ([]Certification, error)
	ListDQF(ctx context.Context) ([]DQFRecord, error)
	ListDQFDocuments(ctx context.Context, dqfID string) ([]DQFDocument, error)
	ListOperatorQualifications(ctx context.Context) ([]OperatorQualification, error)
}
