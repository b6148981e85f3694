package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/caprock-civil/backoffice-cli/internal/payroll"
	"github.com/caprock-civil/backoffice-cli/internal/query"
)

var payrollCmd = &cobra.Command{
	Use:   "payroll",
	Short: "Certified payroll operations",
	Long:  "Commands for listing, generating, and exporting certified payrolls.",
}

// -- payroll list --

var payrollListCmd = &cobra.Command{
	Use:   "list",
	Short: "List certified payrolls",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		env, err := initServices(ctx)
		if err != nil {
			return err
		}
		defer env.Close()

		q, _ := cmd.Flags().GetString("search")
		status, _ := cmd.Flags().GetString("status")

		payrolls := query.Apply(env.Payroll.List(ctx),
			query.Filter{Query: q, Categories: map[string]string{"status": status}},
			payroll.TextFields, payroll.CategoryFields)

		if len(payrolls) == 0 {
			fmt.Fprintln(os.Stderr, "No payrolls found.")
			return nil
		}

		formatPayrollList(os.Stdout, payrolls)
		return nil
	},
}

// -- payroll stats --

var payrollStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show payroll summary statistics",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		env, err := initServices(ctx)
		if err != nil {
			return err
		}
		defer env.Close()

		s := env.Payroll.Stats(ctx)

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		_, _ = fmt.Fprintf(w, "Total payrolls:\t%d\n", s.Total)
		_, _ = fmt.Fprintf(w, "Pending review:\t%d\n", s.PendingReview)
		_, _ = fmt.Fprintf(w, "Submitted:\t%d\n", s.Submitted)
		_, _ = fmt.Fprintf(w, "Total gross:\t$%s\n", s.TotalGross)
		_, _ = fmt.Fprintf(w, "Total hours:\t%.1f\n", s.TotalHours)
		_, _ = fmt.Fprintf(w, "Acceptance:\t%.1f%%\n", s.AcceptancePct)
		return w.Flush()
	},
}

// -- payroll generate --

var payrollGenerateCmd = &cobra.Command{
	Use:   "generate <project-id> <week-ending>",
	Short: "Generate a certified payroll for a project week",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		env, err := initServices(ctx)
		if err != nil {
			return err
		}
		defer env.Close()

		number, err := env.Payroll.Generate(ctx, args[0], args[1])
		if err != nil {
			return err
		}

		fmt.Printf("Generated payroll %s\n", number)
		return nil
	},
}

// -- payroll export --

var payrollExportCmd = &cobra.Command{
	Use:   "export <payroll-id>",
	Short: "Export one payroll with its lines to an xlsx workbook",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		env, err := initServices(ctx)
		if err != nil {
			return err
		}
		defer env.Close()

		id := args[0]
		var target *payroll.CertifiedPayroll
		for _, p := range env.Payroll.List(ctx) {
			if p.ID == id {
				target = &p
				break
			}
		}
		if target == nil {
			return fmt.Errorf("payroll %s not found", id)
		}

		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			out = target.PayrollNumber + ".xlsx"
		}

		if err := payroll.ExportXLSX(*target, env.Payroll.Lines(ctx, id), out); err != nil {
			return err
		}

		fmt.Printf("Wrote %s\n", out)
		return nil
	},
}

func init() {
	payrollListCmd.Flags().String("search", "", "free-text filter over number, project, contract")
	payrollListCmd.Flags().String("status", "", "filter by status (DRAFT, GENERATED, REVIEWED, CERTIFIED, SUBMITTED, ACCEPTED, REJECTED)")

	payrollExportCmd.Flags().String("out", "", "output path (default <payroll-number>.xlsx)")

	payrollCmd.AddCommand(payrollListCmd)
	payrollCmd.AddCommand(payrollStatsCmd)
	payrollCmd.AddCommand(payrollGenerateCmd)
	payrollCmd.AddCommand(payrollExportCmd)
	rootCmd.AddCommand(payrollCmd)
}

// formatPayrollList writes a tabular payroll list to out.
func formatPayrollList(out io.Writer, payrolls []payroll.CertifiedPayroll) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NUMBER\tPROJECT\tWEEK ENDING\tSTATUS\tEMPLOYEES\tGROSS")
	_, _ = fmt.Fprintln(w, "------\t-------\t-----------\t------\t---------\t-----")

	for _, p := range payrolls {
		project := p.ProjectName
		if len(project) > 32 {
			project = project[:29] + "..."
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t$%.2f\n",
			p.PayrollNumber,
			project,
			p.WeekEnding.Format("2006-01-02"),
			p.Status,
			p.EmployeeCount,
			p.TotalGross,
		)
	}
	_ = w.Flush()
}
