package payroll

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caprock-civil/backoffice-cli/pkg/functions"
)

// failStore fails every call, exercising the demo fallback.
type failStore struct{}

func (failStore) ListPayrolls(context.Context) ([]CertifiedPayroll, error) {
	return nil, fmt.Errorf("connection refused")
}
func (failStore) ListLines(context.Context, string) ([]Line, error) {
	return nil, fmt.Errorf("connection refused")
}
func (failStore) UpdateStatus(context.Context, string, Status) error {
	return fmt.Errorf("connection refused")
}
func (failStore) DeletePayroll(context.Context, string) error {
	return fmt.Errorf("connection refused")
}

// okStore returns a fixed payroll list.
type okStore struct {
	payrolls []CertifiedPayroll
	statuses map[string]Status
}

func (s *okStore) ListPayrolls(context.Context) ([]CertifiedPayroll, error) {
	return s.payrolls, nil
}
func (s *okStore) ListLines(context.Context, string) ([]Line, error) { return nil, nil }
func (s *okStore) UpdateStatus(_ context.Context, id string, status Status) error {
	if s.statuses == nil {
		s.statuses = map[string]Status{}
	}
	s.statuses[id] = status
	return nil
}
func (s *okStore) DeletePayroll(context.Context, string) error { return nil }

type fakeGenerator struct {
	resp *functions.GeneratePayrollResponse
	err  error
}

func (f fakeGenerator) GeneratePayroll(context.Context, functions.GeneratePayrollRequest) (*functions.GeneratePayrollResponse, error) {
	return f.resp, f.err
}

func TestService_ListFallsBackToDemo(t *testing.T) {
	svc := NewService(failStore{}, nil)
	got := svc.List(context.Background())

	require.NotEmpty(t, got, "fetch failure must yield the demo dataset, not an empty list")
	assert.Equal(t, demoPayrolls(), got)
}

func TestService_LinesFallBackToDemo(t *testing.T) {
	svc := NewService(failStore{}, nil)
	lines := svc.Lines(context.Background(), "cp-9")

	require.NotEmpty(t, lines)
	for _, l := range lines {
		assert.Equal(t, "cp-9", l.PayrollID)
	}
}

func TestService_SetStatus(t *testing.T) {
	store := &okStore{}
	svc := NewService(store, nil)

	require.NoError(t, svc.SetStatus(context.Background(), "cp-1", StatusCertified))
	assert.Equal(t, StatusCertified, store.statuses["cp-1"])

	err := svc.SetStatus(context.Background(), "cp-1", Status("SHREDDED"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown status")
}

func TestService_Generate(t *testing.T) {
	svc := NewService(&okStore{}, fakeGenerator{
		resp: &functions.GeneratePayrollResponse{Success: true, PayrollNumber: "CP-2026-040"},
	})

	num, err := svc.Generate(context.Background(), "prj-hwy12", "2026-08-29")
	require.NoError(t, err)
	assert.Equal(t, "CP-2026-040", num)
}

func TestService_GenerateFunctionFailure(t *testing.T) {
	svc := NewService(&okStore{}, fakeGenerator{
		resp: &functions.GeneratePayrollResponse{Success: false, Error: "week already generated"},
	})

	_, err := svc.Generate(context.Background(), "prj-hwy12", "2026-08-29")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "week already generated")
}

func TestService_GenerateUnconfigured(t *testing.T) {
	svc := NewService(&okStore{}, nil)
	_, err := svc.Generate(context.Background(), "prj-1", "2026-08-29")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}
