package compliance

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/caprock-civil/backoffice-cli/internal/db"
)

// PostgresStore implements Store against the Supabase compliance tables.
type PostgresStore struct {
	pool db.Pool
}

// NewPostgresStore creates a PostgresStore.
func NewPostgresStore(pool db.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// ListCrew reads the crew roster view.
func (s *PostgresStore) ListCrew(ctx context.Context) ([]CrewMember, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, COALESCE(name, 'Unknown'), COALESCE(trade, ''), COALESCE(crew, ''),
			COALESCE(phone, ''), COALESCE(email, ''), COALESCE(is_foreman, false)
		FROM v_crew_roster
		ORDER BY crew, name`)
	if err != nil {
		return nil, eris.Wrap(err, "compliance: list crew")
	}
	defer rows.Close()

	var crew []CrewMember
	for rows.Next() {
		var m CrewMember
		if err := rows.Scan(&m.ID, &m.Name, &m.Trade, &m.Crew, &m.Phone, &m.Email, &m.IsForeman); err != nil {
			return nil, eris.Wrap(err, "compliance: scan crew member")
		}
		crew = append(crew, m)
	}
	return crew, rows.Err()
}

// ListCertifications returns all employee certifications.
func (s *PostgresStore) ListCertifications(ctx context.Context) ([]Certification, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, employee_id, COALESCE(employee_name, 'Unknown'),
			COALESCE(certification_name, ''), COALESCE(authority, ''),
			issued_date, expiry_date
		FROM employee_certifications
		ORDER BY expiry_date`)
	if err != nil {
		return nil, eris.Wrap(err, "compliance: list certifications")
	}
	defer rows.Close()

	var certs []Certification
	for rows.Next() {
		var c Certification
		if err := rows.Scan(&c.ID, &c.EmployeeID, &c.EmployeeName, &c.Name,
			&c.Authority, &c.IssuedDate, &c.ExpiryDate); err != nil {
			return nil, eris.Wrap(err, "compliance: scan certification")
		}
		certs = append(certs, c)
	}
	return certs, rows.Err()
}

// ListDQF reads the driver qualification compliance view.
func (s *PostgresStore) ListDQF(ctx context.Context) ([]DQFRecord, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, COALESCE(driver_name, 'Unknown'), COALESCE(cdl_class, ''),
			COALESCE(status, 'incomplete'), COALESCE(missing_docs, 0), next_due_date
		FROM v_dqf_compliance
		ORDER BY driver_name`)
	if err != nil {
		return nil, eris.Wrap(err, "compliance: list dqf")
	}
	defer rows.Close()

	var records []DQFRecord
	for rows.Next() {
		var r DQFRecord
		if err := rows.Scan(&r.ID, &r.DriverName, &r.CDLClass, &r.Status,
			&r.MissingDocs, &r.NextDueDate); err != nil {
			return nil, eris.Wrap(err, "compliance: scan dqf record")
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// ListDQFDocuments returns the documents in one driver's qualification
// folder, loaded when the driver is selected.
func (s *PostgresStore) ListDQFDocuments(ctx context.Context, dqfID string) ([]DQFDocument, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, dqf_id, COALESCE(document_type, ''), COALESCE(file_name, ''),
			expiry_date, COALESCE(verified, false)
		FROM dqf_documents
		WHERE dqf_id = $1
		ORDER BY document_type`, dqfID)
	if err != nil {
		return nil, eris.Wrapf(err, "compliance: list dqf documents for %s", dqfID)
	}
	defer rows.Close()

	var docs []DQFDocument
	for rows.Next() {
		var d DQFDocument
		if err := rows.Scan(&d.ID, &d.DQFID, &d.Type, &d.FileName, &d.ExpiryDate, &d.Verified); err != nil {
			return nil, eris.Wrap(err, "compliance: scan dqf document")
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}

// ListOperatorQualifications returns all operator qualifications.
func (s *PostgresStore) ListOperatorQualifications(ctx context.Context) ([]OperatorQualification, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, COALESCE(operator_name, 'Unknown'), COALESCE(equipment, ''),
			COALESCE(level, ''), qualified_at, expiry_date
		FROM operator_qualifications
		ORDER BY operator_name, equipment`)
	if err != nil {
		return nil, eris.Wrap(err, "compliance: list operator qualifications")
	}
	defer rows.Close()

	var quals []OperatorQualification
	for rows.Next() {
		var q OperatorQualification
		if err := rows.Scan(&q.ID, &q.OperatorName, &q.Equipment, &q.Level,
			&q.QualifiedAt, &q.ExpiryDate); err != nil {
			return nil, eris.Wrap(err, "compliance: scan operator qualification")
		}
		quals = append(quals, q)
	}
	return quals, rows.Err()
}
