package payroll

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"
)

func TestExportXLSX_RoundTrip(t *testing.T) {
	payrolls := demoPayrolls()
	lines := demoLines(payrolls[0].ID)
	path := filepath.Join(t.TempDir(), "cp.xlsx")

	require.NoError(t, ExportXLSX(payrolls[0], lines, path))

	f, err := xlsx.OpenFile(path)
	require.NoError(t, err)
	require.Len(t, f.Sheets, 1)

	sheet := f.Sheets[0]
	assert.Equal(t, "Certified Payroll", sheet.Name)
	assert.Equal(t, "CP-2026-031", sheet.Rows[1].Cells[0].String())
	// header + meta + spacer + line header + 3 lines
	assert.Len(t, sheet.Rows, 7)
	assert.Equal(t, "M. Reyes", sheet.Rows[4].Cells[0].String())
}
