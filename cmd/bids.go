package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/caprock-civil/backoffice-cli/internal/bids"
)

var bidsCmd = &cobra.Command{
	Use:   "bids",
	Short: "Bid-management calculators",
}

// -- bids dbe --

var bidsDBECmd = &cobra.Command{
	Use:   "dbe <total-bid> <goal-pct> <committed>",
	Short: "Check DBE participation against the contract goal",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		totalBid, err := decimal.NewFromString(args[0])
		if err != nil {
			return fmt.Errorf("invalid total bid %q: %w", args[0], err)
		}
		goalPct, err := decimal.NewFromString(args[1])
		if err != nil {
			return fmt.Errorf("invalid goal pct %q: %w", args[1], err)
		}
		committed, err := decimal.NewFromString(args[2])
		if err != nil {
			return fmt.Errorf("invalid committed amount %q: %w", args[2], err)
		}

		r := bids.CalculateDBE(bids.DBEInput{
			TotalBid: totalBid, GoalPct: goalPct, Committed: committed,
		})

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		_, _ = fmt.Fprintf(w, "Goal amount:\t$%s\n", r.GoalAmount.StringFixed(2))
		_, _ = fmt.Fprintf(w, "Committed:\t$%s (%s%% of goal)\n", r.Committed.StringFixed(2), r.PctOfGoal)
		if r.MeetsGoal {
			_, _ = fmt.Fprintln(w, "Goal met:\tyes")
		} else {
			_, _ = fmt.Fprintf(w, "Goal met:\tno, short $%s\n", r.Shortfall.StringFixed(2))
		}
		return w.Flush()
	},
}

// -- bids haul --

var bidsHaulCmd = &cobra.Command{
	Use:   "haul <distance-miles> <travel-minutes>",
	Short: "Compute round-trip haul economics",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var in bids.HaulInput
		// Non-numeric input parses to zero, matching the dashboard behavior.
		fmt.Sscanf(args[0], "%f", &in.DistanceMiles) //nolint:errcheck
		fmt.Sscanf(args[1], "%f", &in.TravelMinutes) //nolint:errcheck

		r := bids.NewCalculator(cfg.Haul).Haul(in)

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		_, _ = fmt.Fprintf(w, "Round-trip miles:\t%.1f\n", r.RoundTripMiles)
		_, _ = fmt.Fprintf(w, "Round-trip minutes:\t%.0f\n", r.RoundTripMinutes)
		_, _ = fmt.Fprintf(w, "Loads per hour:\t%.2f\n", r.LoadsPerHour)
		_, _ = fmt.Fprintf(w, "Cost per load:\t$%s\n", r.CostPerLoad.StringFixed(2))
		_, _ = fmt.Fprintf(w, "Cost per ton:\t$%s\n", r.CostPerTon.StringFixed(2))
		return w.Flush()
	},
}

// -- bids routes --

var bidsRoutesCmd = &cobra.Command{
	Use:   "routes",
	Short: "List haul routes, nearest first",
	RunE: func(cmd *cobra.Command, _ []string) error {
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		_, _ = fmt.Fprintln(w, "ROUTE\tORIGIN\tDESTINATION\tMILES\tMINUTES")
		for _, r := range bids.SortRoutes(bids.NewRouteSet().Records()) {
			_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%.1f\t%.0f\n",
				r.Name, r.Origin, r.Destination, r.DistanceMiles, r.TravelMinutes)
		}
		return w.Flush()
	},
}

func init() {
	bidsCmd.AddCommand(bidsDBECmd)
	bidsCmd.AddCommand(bidsHaulCmd)
	bidsCmd.AddCommand(bidsRoutesCmd)
	rootCmd.AddCommand(bidsCmd)
}
