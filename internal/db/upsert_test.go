package db

import (
	"context"
	"fmt"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsert_EmptyRows(t *testing.T) {
	n, err := Upsert(context.TODO(), nil, UpsertSpec{Table: "vehicles"}, nil)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestUpsert_NoColumns(t *testing.T) {
	_, err := Upsert(context.TODO(), nil, UpsertSpec{Table: "vehicles"}, [][]any{{1}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no columns")
}

func TestUpsert_NoConflictKeys(t *testing.T) {
	spec := UpsertSpec{Table: "vehicles", Columns: []string{"id", "unit_number"}}
	_, err := Upsert(context.TODO(), nil, spec, [][]any{{1, "T-101"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no conflict keys")
}

func TestUpsert_BeginError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectBegin().WillReturnError(fmt.Errorf("pool exhausted"))

	spec := UpsertSpec{
		Table:        "fuel_cards",
		Columns:      []string{"id", "card_number"},
		ConflictKeys: []string{"id"},
	}
	_, err = Upsert(context.Background(), mock, spec, [][]any{{"fc-1", "1234"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "begin tx")
	assert.NoError(t, mock.ExpectationsWereMet())
}
