package fleet

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/caprock-civil/backoffice-cli/internal/db"
)

// PostgresStore implements Store against the Supabase fleet tables.
type PostgresStore struct {
	pool db.Pool
}

// NewPostgresStore creates a PostgresStore.
func NewPostgresStore(pool db.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// ListEquipment reads the fleet overview view. The view aliases
// equipment_status to status; nullable columns are defaulted here.
func (s *PostgresStore) ListEquipment(ctx context.Context) ([]Equipment, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, unit_number, COALESCE(name, ''), COALESCE(category, ''),
			COALESCE(equipment_status, ''), COALESCE(operator_name, ''),
			COALESCE(hours_meter, 0), COALESCE(utilization_pct, 0),
			COALESCE(location, ''), COALESCE(latitude, 0), COALESCE(longitude, 0)
		FROM v_equipment_fleet_overview
		ORDER BY unit_number`)
	if err != nil {
		return nil, eris.Wrap(err, "fleet: list equipment")
	}
	defer rows.Close()

	var units []Equipment
	for rows.Next() {
		var e Equipment
		if err := rows.Scan(&e.ID, &e.UnitNumber, &e.Name, &e.Category, &e.Status,
			&e.Operator, &e.HoursMeter, &e.UtilizationPct,
			&e.Location, &e.Latitude, &e.Longitude); err != nil {
			return nil, eris.Wrap(err, "fleet: scan equipment")
		}
		units = append(units, NormalizeEquipment(e))
	}
	return units, rows.Err()
}

// ListFuelCards returns all issued fuel cards.
func (s *PostgresStore) ListFuelCards(ctx context.Context) ([]FuelCard, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, card_number, COALESCE(assigned_to, ''), COALESCE(status, 'active'),
			COALESCE(monthly_limit, 0)
		FROM fuel_cards
		ORDER BY card_number`)
	if err != nil {
		return nil, eris.Wrap(err, "fleet: list fuel cards")
	}
	defer rows.Close()

	var cards []FuelCard
	for rows.Next() {
		var c FuelCard
		if err := rows.Scan(&c.ID, &c.CardNumber, &c.AssignedTo, &c.Status, &c.MonthlyLimit); err != nil {
			return nil, eris.Wrap(err, "fleet: scan fuel card")
		}
		cards = append(cards, c)
	}
	return cards, rows.Err()
}

// ListFuelTransactions returns fuel purchases, newest first.
func (s *PostgresStore) ListFuelTransactions(ctx context.Context) ([]FuelTransaction, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, card_id, COALESCE(unit_number, ''), COALESCE(driver, ''),
			transaction_date, COALESCE(gallons, 0), COALESCE(price_per_gallon, 0),
			COALESCE(total, 0), COALESCE(vendor, '')
		FROM fuel_transactions
		ORDER BY transaction_date DESC`)
	if err != nil {
		return nil, eris.Wrap(err, "fleet: list fuel transactions")
	}
	defer rows.Close()

	var txs []FuelTransaction
	for rows.Next() {
		var t FuelTransaction
		if err := rows.Scan(&t.ID, &t.CardID, &t.UnitNumber, &t.Driver, &t.Date,
			&t.Gallons, &t.PricePerGallon, &t.Total, &t.Vendor); err != nil {
			return nil, eris.Wrap(err, "fleet: scan fuel transaction")
		}
		txs = append(txs, NormalizeFuelTransaction(t))
	}
	return txs, rows.Err()
}

// ListMaintenance returns open maintenance work items.
func (s *PostgresStore) ListMaintenance(ctx context.Context) ([]Maintenance, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, unit_number, COALESCE(maintenance_type, ''), COALESCE(description, ''),
			COALESCE(status, ''), due_date, COALESCE(cost, 0)
		FROM equipment_maintenance
		ORDER BY due_date`)
	if err != nil {
		return nil, eris.Wrap(err, "fleet: list maintenance")
	}
	defer rows.Close()

	var items []Maintenance
	for rows.Next() {
		var m Maintenance
		if err := rows.Scan(&m.ID, &m.UnitNumber, &m.Type, &m.Description,
			&m.Status, &m.DueDate, &m.Cost); err != nil {
			return nil, eris.Wrap(err, "fleet: scan maintenance")
		}
		items = append(items, NormalizeMaintenance(m))
	}
	return items, rows.Err()
}

// ListMaintenanceHistory returns completed records for one unit, loaded
// when the unit is selected.
func (s *PostgresStore) ListMaintenanceHistory(ctx context.Context, unitNumber string) ([]MaintenanceRecord, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, unit_number, completed_at, COALESCE(description, ''),
			COALESCE(vendor, ''), COALESCE(cost, 0)
		FROM maintenance_records
		WHERE unit_number = $1
		ORDER BY completed_at DESC`, unitNumber)
	if err != nil {
		return nil, eris.Wrapf(err, "fleet: list maintenance history for %s", unitNumber)
	}
	defer rows.Close()

	var records []MaintenanceRecord
	for rows.Next() {
		var r MaintenanceRecord
		if err := rows.Scan(&r.ID, &r.UnitNumber, &r.CompletedAt, &r.Description,
			&r.Vendor, &r.Cost); err != nil {
			return nil, eris.Wrap(err, "fleet: scan maintenance record")
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// ListInspections returns vehicle inspections, newest first.
func (s *PostgresStore) ListInspections(ctx context.Context) ([]Inspection, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT i.id, COALESCE(v.unit_number, ''), i.inspection_date,
			COALESCE(i.inspector, ''), COALESCE(i.passed, false),
			COALESCE(i.defect_count, 0), COALESCE(i.notes, '')
		FROM vehicle_inspections i
		LEFT JOIN vehicles v ON v.id = i.vehicle_id
		ORDER BY i.inspection_date DESC`)
	if err != nil {
		return nil, eris.Wrap(err, "fleet: list inspections")
	}
	defer rows.Close()

	var inspections []Inspection
	for rows.Next() {
		var in Inspection
		if err := rows.Scan(&in.ID, &in.UnitNumber, &in.Date, &in.Inspector,
			&in.Passed, &in.DefectCount, &in.Notes); err != nil {
			return nil, eris.Wrap(err, "fleet: scan inspection")
		}
		inspections = append(inspections, in)
	}
	return inspections, rows.Err()
}
