package payroll

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/caprock-civil/backoffice-cli/internal/db"
)

// PostgresStore implements Store against the Supabase tables.
type PostgresStore struct {
	pool db.Pool
}

// NewPostgresStore creates a PostgresStore.
func NewPostgresStore(pool db.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// ListPayrolls returns all certified payrolls, newest week first. Nullable
// columns are defaulted at the boundary.
func (s *PostgresStore) ListPayrolls(ctx context.Context) ([]CertifiedPayroll, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, payroll_number, project_id,
			COALESCE(project_name, ''), COALESCE(contract_number, ''),
			week_ending_date, COALESCE(status, 'DRAFT'),
			COALESCE(employee_count, 0), COALESCE(total_hours, 0), COALESCE(total_gross, 0),
			created_at
		FROM certified_payrolls
		ORDER BY week_ending_date DESC`)
	if err != nil {
		return nil, eris.Wrap(err, "payroll: list")
	}
	defer rows.Close()

	var payrolls []CertifiedPayroll
	for rows.Next() {
		var p CertifiedPayroll
		if err := rows.Scan(&p.ID, &p.PayrollNumber, &p.ProjectID, &p.ProjectName,
			&p.ContractNumber, &p.WeekEnding, &p.Status,
			&p.EmployeeCount, &p.TotalHours, &p.TotalGross, &p.CreatedAt); err != nil {
			return nil, eris.Wrap(err, "payroll: scan")
		}
		payrolls = append(payrolls, Normalize(p))
	}
	return payrolls, rows.Err()
}

// ListLines returns the lines of one payroll, loaded when it is selected.
func (s *PostgresStore) ListLines(ctx context.Context, payrollID string) ([]Line, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, payroll_id, COALESCE(employee_name, ''), COALESCE(classification, ''),
			COALESCE(hours_st, 0), COALESCE(hours_ot, 0),
			COALESCE(rate_st, 0), COALESCE(rate_ot, 0),
			COALESCE(gross_pay, 0), COALESCE(fringe_benefits, 0)
		FROM certified_payroll_lines
		WHERE payroll_id = $1
		ORDER BY employee_name`, payrollID)
	if err != nil {
		return nil, eris.Wrapf(err, "payroll: list lines for %s", payrollID)
	}
	defer rows.Close()

	var lines []Line
	for rows.Next() {
		var l Line
		if err := rows.Scan(&l.ID, &l.PayrollID, &l.EmployeeName, &l.Classification,
			&l.HoursST, &l.HoursOT, &l.RateST, &l.RateOT,
			&l.GrossPay, &l.FringeBenefits); err != nil {
			return nil, eris.Wrap(err, "payroll: scan line")
		}
		lines = append(lines, NormalizeLine(l))
	}
	return lines, rows.Err()
}

// UpdateStatus sets the status label. No transition check: the lifecycle is
// a labeling convention, not an enforced state machine.
func (s *PostgresStore) UpdateStatus(ctx context.Context, id string, status Status) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE certified_payrolls SET status = $2, updated_at = now() WHERE id = $1`,
		id, string(status))
	if err != nil {
		return eris.Wrapf(err, "payroll: update status %s", id)
	}
	if tag.RowsAffected() == 0 {
		return eris.Errorf("payroll: update status: %s not found", id)
	}
	return nil
}

// DeletePayroll removes a payroll and its lines.
func (s *PostgresStore) DeletePayroll(ctx context.Context, id string) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return eris.Wrap(err, "payroll: delete: begin")
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if _, err := tx.Exec(ctx, `DELETE FROM certified_payroll_lines WHERE payroll_id = $1`, id); err != nil {
		return eris.Wrapf(err, "payroll: delete lines %s", id)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM certified_payrolls WHERE id = $1`, id); err != nil {
		return eris.Wrapf(err, "payroll: delete %s", id)
	}
	return tx.Commit(ctx)
}
