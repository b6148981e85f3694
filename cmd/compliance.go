package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

var complianceCmd = &cobra.Command{
	Use:   "compliance",
	Short: "Workforce compliance operations",
}

// -- compliance status --

var complianceStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show DQF and certification compliance",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		env, err := initServices(ctx)
		if err != nil {
			return err
		}
		defer env.Close()

		d := env.Compliance.LoadDashboard(ctx)

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		_, _ = fmt.Fprintf(w, "Drivers:\t%d\n", d.Summary.Drivers)
		_, _ = fmt.Fprintf(w, "Compliant:\t%.1f%%\n", d.Summary.CompliancePct)
		_, _ = fmt.Fprintf(w, "Certifications:\t%d\n", d.Summary.Certifications)
		_, _ = fmt.Fprintf(w, "Expiring soon:\t%d\n", d.Summary.ExpiringSoon)
		_, _ = fmt.Fprintf(w, "Expired:\t%d\n", d.Summary.Expired)
		_ = w.Flush()

		fmt.Println()
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		_, _ = fmt.Fprintln(w, "DRIVER\tCDL\tSTATUS\tMISSING\tNEXT DUE")
		for _, r := range d.DQF {
			_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
				r.DriverName, r.CDLClass, r.Status, r.MissingDocs,
				r.NextDueDate.Format("2006-01-02"))
		}
		return w.Flush()
	},
}

// -- compliance crew --

var complianceCrewCmd = &cobra.Command{
	Use:   "crew",
	Short: "Show the crew roster",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		env, err := initServices(ctx)
		if err != nil {
			return err
		}
		defer env.Close()

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		_, _ = fmt.Fprintln(w, "NAME\tTRADE\tCREW\tPHONE\tFOREMAN")
		for _, m := range env.Compliance.Crew(ctx) {
			foreman := ""
			if m.IsForeman {
				foreman = "yes"
			}
			_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				m.Name, m.Trade, m.Crew, m.Phone, foreman)
		}
		return w.Flush()
	},
}

// -- compliance expiring --

var complianceExpiringCmd = &cobra.Command{
	Use:   "expiring",
	Short: "List certifications expiring inside the 30-day window",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		env, err := initServices(ctx)
		if err != nil {
			return err
		}
		defer env.Close()

		now := time.Now()
		cutoff := now.AddDate(0, 0, 30)

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		_, _ = fmt.Fprintln(w, "EMPLOYEE\tCERTIFICATION\tAUTHORITY\tEXPIRES")
		for _, c := range env.Compliance.Certifications(ctx) {
			if c.ExpiryDate.Before(now) || c.ExpiryDate.After(cutoff) {
				continue
			}
			_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				c.EmployeeName, c.Name, c.Authority, c.ExpiryDate.Format("2006-01-02"))
		}
		return w.Flush()
	},
}

func init() {
	complianceCmd.AddCommand(complianceStatusCmd)
	complianceCmd.AddCommand(complianceCrewCmd)
	complianceCmd.AddCommand(complianceExpiringCmd)
	rootCmd.AddCommand(complianceCmd)
}
