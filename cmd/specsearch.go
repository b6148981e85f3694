package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/caprock-civil/backoffice-cli/internal/specsearch"
)

var specSearchCmd = &cobra.Command{
	Use:   "spec-search <query>...",
	Short: "Search the standard specification catalog",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		env, err := initServices(ctx)
		if err != nil {
			return err
		}
		defer env.Close()

		q := strings.Join(args, " ")
		results := specsearch.Search(env.Catalog, q)

		if env.Recent != nil {
			if err := env.Recent.Add(ctx, q); err != nil {
				return err
			}
		}

		if len(results) == 0 {
			fmt.Fprintln(os.Stderr, "No matching sections.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		_, _ = fmt.Fprintln(w, "SECTION\tTITLE\tDIVISION\tMATCHED")
		for _, r := range results {
			_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				r.Section.Number, r.Section.Title, r.Section.Division,
				strings.Join(r.MatchedKeywords, ", "))
		}
		return w.Flush()
	},
}

var specSearchRecentCmd = &cobra.Command{
	Use:   "recent",
	Short: "Show recent searches",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		env, err := initServices(ctx)
		if err != nil {
			return err
		}
		defer env.Close()

		if env.Recent == nil {
			fmt.Fprintln(os.Stderr, "Recent-search store unavailable.")
			return nil
		}

		queries, err := env.Recent.Recent(ctx)
		if err != nil {
			return err
		}
		for _, q := range queries {
			fmt.Println(q)
		}
		return nil
	},
}

func init() {
	specSearchCmd.AddCommand(specSearchRecentCmd)
	rootCmd.AddCommand(specSearchCmd)
}
