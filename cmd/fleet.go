package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/caprock-civil/backoffice-cli/internal/fleet"
	"github.com/caprock-civil/backoffice-cli/internal/query"
)

var fleetCmd = &cobra.Command{
	Use:   "fleet",
	Short: "Equipment fleet operations",
}

// -- fleet status --

var fleetStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the fleet overview with KPI summary",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		env, err := initServices(ctx)
		if err != nil {
			return err
		}
		defer env.Close()

		q, _ := cmd.Flags().GetString("search")
		status, _ := cmd.Flags().GetString("status")
		category, _ := cmd.Flags().GetString("category")

		d := env.Fleet.LoadDashboard(ctx)
		units := query.Apply(d.Equipment,
			query.Filter{Query: q, Categories: map[string]string{
				"status": status, "category": category,
			}},
			fleet.EquipmentTextFields, fleet.EquipmentCategoryFields)

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		_, _ = fmt.Fprintf(w, "Units:\t%d\n", d.Summary.TotalUnits)
		_, _ = fmt.Fprintf(w, "Active:\t%d\n", d.Summary.ByStatus[fleet.EquipStatusActive])
		_, _ = fmt.Fprintf(w, "In maintenance:\t%d\n", d.Summary.ByStatus[fleet.EquipStatusMaintenance])
		_, _ = fmt.Fprintf(w, "Utilization:\t%.1f%%\n", d.Summary.UtilizationPct)
		_, _ = fmt.Fprintf(w, "Maintenance due:\t%d\n", d.Summary.MaintenanceDue)
		_, _ = fmt.Fprintf(w, "Fuel spend:\t$%s\n", d.Summary.FuelSpend)
		_ = w.Flush()

		fmt.Println()
		formatEquipmentList(os.Stdout, units)
		return nil
	},
}

// -- fleet fuel --

var fleetFuelCmd = &cobra.Command{
	Use:   "fuel",
	Short: "List fuel transactions",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		env, err := initServices(ctx)
		if err != nil {
			return err
		}
		defer env.Close()

		card, _ := cmd.Flags().GetString("card")

		txs := query.Apply(env.Fleet.FuelTransactions(ctx),
			query.Filter{Categories: map[string]string{"card": card}},
			fleet.FuelTextFields, fleet.FuelCategoryFields)
		summary := fleet.SummarizeFuel(txs)

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		_, _ = fmt.Fprintln(w, "DATE\tUNIT\tDRIVER\tGALLONS\tTOTAL\tVENDOR")
		for _, tx := range txs {
			_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%.1f\t$%.2f\t%s\n",
				tx.Date.Format("2006-01-02"), tx.UnitNumber, tx.Driver,
				tx.Gallons, tx.Total, tx.Vendor)
		}
		_, _ = fmt.Fprintf(w, "\nTransactions:\t%d\nGallons:\t%.1f\nSpend:\t$%s\n",
			summary.Transactions, summary.Gallons, summary.Spend)
		return w.Flush()
	},
}

func init() {
	fleetStatusCmd.Flags().String("search", "", "free-text filter over unit, name, operator, location")
	fleetStatusCmd.Flags().String("status", "", "filter by status (active, idle, maintenance, down)")
	fleetStatusCmd.Flags().String("category", "", "filter by equipment category")

	fleetFuelCmd.Flags().String("card", "", "filter by fuel card id")

	fleetCmd.AddCommand(fleetStatusCmd)
	fleetCmd.AddCommand(fleetFuelCmd)
	rootCmd.AddCommand(fleetCmd)
}

// formatEquipmentList writes the fleet grouped by category to out.
func formatEquipmentList(out io.Writer, units []fleet.Equipment) {
	g := fleet.GroupedEquipment(units)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, category := range g.Keys {
		_, _ = fmt.Fprintf(w, "%s\n", category)
		for _, e := range g.Groups[category] {
			_, _ = fmt.Fprintf(w, "  %s\t%s\t%s\t%s\t%.0f%%\n",
				e.UnitNumber, e.Name, e.Status, e.Operator, e.UtilizationPct)
		}
	}
	_ = w.Flush()
}
