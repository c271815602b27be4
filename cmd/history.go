package cmd

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

var historyLimit int

// historyCmd prints recorded sync runs.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent sync runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := loadRuntime(pathOverrides{})
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		if !rt.cfg.History.Enabled {
			return fmt.Errorf("history is disabled; set HISTORY_ENABLED=true")
		}

		repo, err := rt.historyRepository()
		if err != nil {
			return err
		}

		limit := historyLimit
		if limit <= 0 {
			limit = rt.cfg.History.DefaultLimit
		}
		runs, err := repo.List(context.Background(), limit)
		if err != nil {
			return err
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "STARTED\tADDED\tFILLED\tMISMATCHES\tMODE\tLOCAL")
		for _, r := range runs {
			mode := "write"
			if r.DryRun {
				mode = "dry-run"
			}
			fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%s\t%s\n",
				r.StartedAt.Local().Format(time.DateTime), r.Added, r.Filled, r.Mismatches, mode, r.LocalPath)
		}
		return tw.Flush()
	},
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 0, "Number of runs to show (default history.default_limit)")

	RootCmd.AddCommand(historyCmd)
}
