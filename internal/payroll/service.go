package payroll

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/caprock-civil/backoffice-cli/pkg/functions"
)

// Service is the payroll data source adapter. Fetch failures degrade to the
// demo dataset; the caller cannot distinguish live from demo data, which is
// the documented policy.
type Service struct {
	store     Store
	generator functions.Client // nil disables the generate action
}

// NewService creates a Service. generator may be nil.
func NewService(store Store, generator functions.Client) *Service {
	return &Service{store: store, generator: generator}
}

// List returns all certified payrolls, falling back to demo data on error.
func (s *Service) List(ctx context.Context) []CertifiedPayroll {
	payrolls, err := s.store.ListPayrolls(ctx)
	if err != nil {
		zap.L().Warn("payroll fetch failed, serving demo data", zap.Error(err))
		return demoPayrolls()
	}
	return payrolls
}

// Lines returns the lines for one payroll, falling back to demo data.
func (s *Service) Lines(ctx context.Context, payrollID string) []Line {
	lines, err := s.store.ListLines(ctx, payrollID)
	if err != nil {
		zap.L().Warn("payroll lines fetch failed, serving demo data",
			zap.String("payroll_id", payrollID), zap.Error(err))
		return demoLines(payrollID)
	}
	return lines
}

// Stats summarizes the full unfiltered collection.
func (s *Service) Stats(ctx context.Context) Summary {
	return Summarize(s.List(ctx))
}

// SetStatus applies a status action.
func (s *Service) SetStatus(ctx context.Context, id string, status Status) error {
	switch status {
	case StatusDraft, StatusGenerated, StatusReviewed, StatusCertified,
		StatusSubmitted, StatusAccepted, StatusRejected:
	default:
		return eris.Errorf("payroll: unknown status %q", status)
	}
	return s.store.UpdateStatus(ctx, id, status)
}

// Delete removes a payroll and its lines.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.store.DeletePayroll(ctx, id)
}

// Generate invokes the certified-payroll-generate edge function.
func (s *Service) Generate(ctx context.Context, projectID, weekEndingDate string) (string, error) {
	if s.generator == nil {
		return "", eris.New("payroll: generate is not configured")
	}
	resp, err := s.generator.GeneratePayroll(ctx, functions.GeneratePayrollRequest{
		ProjectID:      projectID,
		WeekEndingDate: weekEndingDate,
	})
	if err != nil {
		return "", eris.Wrap(err, "payroll: generate")
	}
	if !resp.Success {
		return "", eris.Errorf("payroll: generate: %s", resp.Error)
	}

	zap.L().Info("certified payroll generated",
		zap.String("project_id", projectID),
		zap.String("payroll_number", resp.PayrollNumber))
	return resp.PayrollNumber, nil
}
