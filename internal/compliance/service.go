package compliance

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Service is the compliance data source adapter. Fetch failures degrade to
// the demo dataset per list.
type Service struct {
	store Store
}

// NewService creates a Service.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Crew returns the crew roster, falling back to demo data.
func (s *Service) Crew(ctx context.Context) []CrewMember {
	crew, err := s.store.ListCrew(ctx)
	if err != nil {
		zap.L().Warn("crew fetch failed, serving demo data", zap.Error(err))
		return demoCrew()
	}
	return crew
}

// Certifications returns employee certifications, falling back to demo data.
func (s *Service) Certifications(ctx context.Context) []Certification {
	certs, err := s.store.ListCertifications(ctx)
	if err != nil {
		zap.L().Warn("certification fetch failed, serving demo data", zap.Error(err))
		return demoCertifications()
	}
	return certs
}

// DQF returns driver qualification files, falling back to demo data.
func (s *Service) DQF(ctx context.Context) []DQFRecord {
	records, err := s.store.ListDQF(ctx)
	if err != nil {
		zap.L().Warn("dqf fetch failed, serving demo data", zap.Error(err))
		return demoDQF()
	}
	return records
}

// DQFDocuments returns the selected driver's qualification documents.
func (s *Service) DQFDocuments(ctx context.Context, dqfID string) []DQFDocument {
	docs, err := s.store.ListDQFDocuments(ctx, dqfID)
	if err != nil {
		zap.L().Warn("dqf document fetch failed, serving demo data",
			zap.String("dqf", dqfID), zap.Error(err))
		return demoDQFDocuments(dqfID)
	}
	return docs
}

// OperatorQualifications returns operator qualifications, falling back to
// demo data.
func (s *Service) OperatorQualifications(ctx context.Context) []OperatorQualification {
	quals, err := s.store.ListOperatorQualifications(ctx)
	if err != nil {
		zap.L().Warn("operator qualification fetch failed, serving demo data", zap.Error(err))
		return demoOperatorQualifications()
	}
	return quals
}

// Dashboard bundles the independent compliance lists plus the KPI summary.
type Dashboard struct {
	DQF            []DQFRecord     `json:"dqf"`
	Certifications []Certification `json:"certifications"`
	Crew           []CrewMember    `json:"crew"`
	Summary        Summary         `json:"summary"`
}

// LoadDashboard fetches the three independent lists concurrently. Each list
// degrades to demo data on its own, so the group never fails.
func (s *Service) LoadDashboard(ctx context.Context) Dashboard {
	var d Dashboard
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		d.DQF = s.DQF(gctx)
		return nil
	})
	g.Go(func() error {
		d.Certifications = s.Certifications(gctx)
		return nil
	})
	g.Go(func() error {
		d.Crew = s.Crew(gctx)
		return nil
	})
	_ = g.Wait()

	d.Summary = Summarize(d.DQF, d.Certifications, clockNow())
	return d
}

// clockNow is swapped in tests.
var clockNow = func() time.Time { return time.Now() }
