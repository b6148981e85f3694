package fleet

import (
	"context"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockStore(t *testing.T) (*PostgresStore, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { mock.Close() })
	return NewPostgresStore(mock), mock
}

func TestPostgresStore_ListEquipment_Defaults(t *testing.T) {
	s, mock := newMockStore(t)

	rows := pgxmock.NewRows([]string{
		"id", "unit_number", "name", "category", "equipment_status", "operator_name",
		"hours_meter", "utilization_pct", "location", "latitude", "longitude",
	}).AddRow("eq-1", "T-500", "", "", "", "", 100.0, 0.0, "", 0.0, 0.0)

	mock.ExpectQuery(`SELECT .+ FROM v_equipment_fleet_overview`).WillReturnRows(rows)

	units, err := s.ListEquipment(context.Background())
	require.NoError(t, err)
	require.Len(t, units, 1)
	assert.Equal(t, "T-500", units[0].Name)
	assert.Equal(t, "Uncategorized", units[0].Category)
	assert.Equal(t, EquipStatusIdle, units[0].Status)
	assert.Equal(t, "Unassigned", units[0].Operator)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_ListMaintenanceHistory(t *testing.T) {
	s, mock := newMockStore(t)

	done := time.Date(2026, time.June, 14, 0, 0, 0, 0, time.UTC)
	rows := pgxmock.NewRows([]string{
		"id", "unit_number", "completed_at", "description", "vendor", "cost",
	}).AddRow("mr-1", "T-101", done, "Oil change", "Shop", 310.0)

	mock.ExpectQuery(`SELECT .+ FROM maintenance_records WHERE unit_number = \$1`).
		WithArgs("T-101").
		WillReturnRows(rows)

	records, err := s.ListMaintenanceHistory(context.Background(), "T-101")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Oil change", records[0].Description)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_ListFuelTransactions_Error(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(`SELECT .+ FROM fuel_transactions`).
		WillReturnError(context.DeadlineExceeded)

	_, err := s.ListFuelTransactions(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list fuel transactions")
	assert.NoError(t, mock.ExpectationsWereMet())
}
