package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedTables_RowsMatchColumns(t *testing.T) {
	for _, s := range seedTables() {
		require.NotEmpty(t, s.rows, "seed table %s has no rows", s.spec.Table)
		for _, row := range s.rows {
			assert.Len(t, row, len(s.spec.Columns),
				"seed table %s row width should match its column list", s.spec.Table)
		}
	}
}

func TestSeedTables_PayrollColumns(t *testing.T) {
	var found bool
	for _, s := range seedTables() {
		if s.spec.Table != "certified_payrolls" {
			continue
		}
		found = true
		// The payroll store selects week_ending_date; the seed must write
		// the same column.
		assert.Contains(t, s.spec.Columns, "week_ending_date")
		assert.NotContains(t, s.spec.Columns, "week_ending")
	}
	require.True(t, found, "seed should cover certified_payrolls")
}
