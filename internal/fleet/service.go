package fleet

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/caprock-civil/backoffice-cli/internal/query"
)

// Service is the fleet data source adapter. Fetch failures degrade to the
// demo dataset per list.
type Service struct {
	store Store
}

// NewService creates a Service.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Equipment returns the fleet overview, falling back to demo data.
func (s *Service) Equipment(ctx context.Context) []Equipment {
	units, err := s.store.ListEquipment(ctx)
	if err != nil {
		zap.L().Warn("equipment fetch failed, serving demo data", zap.Error(err))
		return demoEquipment()
	}
	return units
}

// FuelCards returns issued fuel cards, falling back to demo data.
func (s *Service) FuelCards(ctx context.Context) []FuelCard {
	cards, err := s.store.ListFuelCards(ctx)
	if err != nil {
		zap.L().Warn("fuel card fetch failed, serving demo data", zap.Error(err))
		return demoFuelCards()
	}
	return cards
}

// FuelTransactions returns fuel purchases, falling back to demo data.
func (s *Service) FuelTransactions(ctx context.Context) []FuelTransaction {
	txs, err := s.store.ListFuelTransactions(ctx)
	if err != nil {
		zap.L().Warn("fuel transaction fetch failed, serving demo data", zap.Error(err))
		return demoFuelTransactions()
	}
	return txs
}

// Maintenance returns open work items, falling back to demo data.
func (s *Service) Maintenance(ctx context.Context) []Maintenance {
	items, err := s.store.ListMaintenance(ctx)
	if err != nil {
		zap.L().Warn("maintenance fetch failed, serving demo data", zap.Error(err))
		return demoMaintenance()
	}
	return items
}

// MaintenanceHistory returns completed records for the selected unit.
func (s *Service) MaintenanceHistory(ctx context.Context, unitNumber string) []MaintenanceRecord {
	records, err := s.store.ListMaintenanceHistory(ctx, unitNumber)
	if err != nil {
		zap.L().Warn("maintenance history fetch failed, serving demo data",
			zap.String("unit", unitNumber), zap.Error(err))
		return demoMaintenanceHistory(unitNumber)
	}
	return records
}

// Inspections returns vehicle inspections, falling back to demo data.
func (s *Service) Inspections(ctx context.Context) []Inspection {
	inspections, err := s.store.ListInspections(ctx)
	if err != nil {
		zap.L().Warn("inspection fetch failed, serving demo data", zap.Error(err))
		return demoInspections()
	}
	return inspections
}

// Dashboard bundles the independent fleet lists plus the KPI summary.
type Dashboard struct {
	Equipment   []Equipment       `json:"equipment"`
	Maintenance []Maintenance     `json:"maintenance"`
	Fuel        []FuelTransaction `json:"fuel"`
	Summary     Summary           `json:"summary"`
}

// LoadDashboard fetches the three independent lists concurrently. Each list
// degrades to demo data on its own, so the group never fails.
func (s *Service) LoadDashboard(ctx context.Context) Dashboard {
	var d Dashboard
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		d.Equipment = s.Equipment(gctx)
		return nil
	})
	g.Go(func() error {
		d.Maintenance = s.Maintenance(gctx)
		return nil
	})
	g.Go(func() error {
		d.Fuel = s.FuelTransactions(gctx)
		return nil
	})
	_ = g.Wait()

	d.Summary = Summarize(d.Equipment, d.Maintenance, d.Fuel)
	return d
}

// GroupedEquipment partitions the (possibly filtered) fleet by category for
// the grouped list view.
func GroupedEquipment(units []Equipment) query.Grouped[Equipment] {
	return query.GroupBy(units, func(e Equipment) string { return e.Category })
}
