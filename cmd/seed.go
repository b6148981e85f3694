package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/caprock-civil/backoffice-cli/internal/db"
)

// seedCmd pushes a small starter dataset into a live database so a fresh
// environment has rows to render.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Upsert starter rows into the configured database",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		if cfg.Store.DatabaseURL == "" {
			return fmt.Errorf("seed requires store.database_url to be configured")
		}

		pool, err := db.Open(ctx, cfg.Store.DatabaseURL)
		if err != nil {
			return err
		}
		defer pool.Close()

		for _, s := range seedTables() {
			n, err := db.Upsert(ctx, pool, s.spec, s.rows)
			if err != nil {
				return err
			}
			zap.L().Info("seeded table", zap.String("table", s.spec.Table), zap.Int64("rows", n))
		}

		fmt.Println("Seed complete.")
		return nil
	},
}

type seedTable struct {
	spec db.UpsertSpec
	rows [][]any
}

// seedTables is the starter dataset. Column lists must match what the
// dashboard stores select.
func seedTables() []seedTable {
	week := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	return []seedTable{
		{
			spec: db.UpsertSpec{
				Table:        "vehicles",
				Columns:      []string{"id", "unit_number", "name", "category", "status", "operator_name"},
				ConflictKeys: []string{"id"},
			},
			rows: [][]any{
				{"seed-eq-1", "T-101", "Kenworth T880 Dump", "Dump Truck", "active", "R. Alvarez"},
				{"seed-eq-2", "EX-7", "CAT 336 Excavator", "Excavator", "active", "J. Whitfield"},
			},
		},
		{
			spec: db.UpsertSpec{
				Table:        "certified_payrolls",
				Columns:      []string{"id", "payroll_number", "project_id", "project_name", "week_ending_date", "status"},
				ConflictKeys: []string{"id"},
			},
			rows: [][]any{
				{"seed-cp-1", "CP-2026-001", "prj-hwy12", "Highway 12 Resurfacing", week(2026, time.August, 22), "DRAFT"},
			},
		},
		{
			spec: db.UpsertSpec{
				Table:        "employee_certifications",
				Columns:      []string{"id", "employee_id", "employee_name", "certification_name", "authority", "issued_date", "expiry_date"},
				ConflictKeys: []string{"id"},
			},
			rows: [][]any{
				{"seed-ct-1", "seed-cm-1", "R. Alvarez", "DOT Medical Card", "FMCSA",
					week(2025, time.September, 10), week(2027, time.September, 10)},
			},
		},
	}
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
