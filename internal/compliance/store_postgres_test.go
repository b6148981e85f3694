package compliance

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

func TestPostgresStore_ListDQF_Defaults(t *testing.T) {
	s, mock := newMockStore(t)

	due := time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC)
	rows := pgxmock.NewRows([]string{
		"id", "driver_name", "cdl_class", "status", "missing_docs", "next_due_date",
	}).AddRow("dqf-1", "R. Alvarez", "A", "", 0, due)

	mock.ExpectQuery(`SELECT .+ FROM v_dqf_compliance`).WillReturnRows(rows)

	records, err := s.ListDQF(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "", records[0].Status)
	assert.Equal(t, "R. Alvarez", records[0].DriverName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_ListDQFDocuments(t *testing.T) {
	s, mock := newMockStore(t)

	exp := time.Date(2027, time.January, 5, 0, 0, 0, 0, time.UTC)
	rows := pgxmock.NewRows([]string{
		"id", "dqf_id", "document_type", "file_name", "expiry_date", "verified",
	}).AddRow("dd-1", "dqf-1", "MVR", "mvr-2026.pdf", exp, true)

	mock.ExpectQuery(`SELECT .+ FROM dqf_documents WHERE dqf_id = \$1`).
		WithArgs("dqf-1").
		WillReturnRows(rows)

	docs, err := s.ListDQFDocuments(context.Background(), "dqf-1")
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "MVR", docs[0].Type)
	assert.True(t, docs[0].Verified)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_ListCrew_Error(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(`SELECT .+ FROM v_crew_roster`).
		WillReturnError(context.DeadlineExceeded)

	_, err := s.ListCrew(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list crew")
	assert.NoError(t, mock.ExpectationsWereMet())
}
