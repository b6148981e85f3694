package payroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize_Empty(t *testing.T) {
	sum := Summarize(nil)

	assert.Equal(t, 0, sum.Total)
	assert.Equal(t, 0, sum.PendingReview)
	assert.Equal(t, "0.00", sum.TotalGross)
	assert.Equal(t, 0.0, sum.TotalHours)
	assert.Equal(t, 0.0, sum.AcceptancePct, "no division-by-zero NaN on empty input")
}

func TestSummarize_DemoDataset(t *testing.T) {
	sum := Summarize(demoPayrolls())

	assert.Equal(t, 4, sum.Total)
	assert.Equal(t, 1, sum.Submitted)
	assert.Equal(t, 1, sum.PendingReview) // one REVIEWED, none GENERATED
	assert.Equal(t, 1, sum.ByStatus[string(StatusDraft)])
	// 31418.50 + 28660.00 + 19821.75 + 18210.00
	assert.Equal(t, "98110.25", sum.TotalGross)
	assert.Equal(t, 1814.0, sum.TotalHours)
	// 1 accepted of 1 decided
	assert.Equal(t, 100.0, sum.AcceptancePct)
}

func TestNormalize_Defaults(t *testing.T) {
	p := Normalize(CertifiedPayroll{ID: "x", EmployeeCount: -1})
	assert.Equal(t, "Unknown Project", p.ProjectName)
	assert.Equal(t, StatusDraft, p.Status)
	assert.Equal(t, 0, p.EmployeeCount)

	l := NormalizeLine(Line{ID: "y"})
	assert.Equal(t, "Unknown", l.EmployeeName)
	assert.Equal(t, "Unknown", l.Classification)
}

func TestTextFields(t *testing.T) {
	p := CertifiedPayroll{PayrollNumber: "CP-1", ProjectName: "Bridge", ContractNumber: "DOT-9"}
	assert.Equal(t, []string{"CP-1", "Bridge", "DOT-9"}, TextFields(p))
}
