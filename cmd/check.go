package cmd

import (
	"context"
	"errors"
	"fmt"

	"account-sync/feature/accountsync"

	"github.com/spf13/cobra"
)

var checkPaths pathOverrides

// errOutOfDate makes check exit non-zero.
var errOutOfDate = errors.New("local document is out of date")

// checkCmd verifies that the local document needs no changes.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check whether the local document is in sync",
	Long: `Runs a dry-run sync and exits with a non-zero status when the local
document is missing accounts or fields, is not in canonical form, or has
values that conflict with the source document.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		rt, err := newRuntime(ctx, checkPaths)
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		res, err := rt.service.Sync(ctx, accountsync.Options{DryRun: true})
		if err != nil {
			return err
		}
		printSyncReport(rt.logger, res, true)

		switch {
		case res.Report.Mismatches > 0:
			return fmt.Errorf("%w: %d mismatches", errOutOfDate, res.Report.Mismatches)
		case res.Changed:
			return errOutOfDate
		}
		rt.logger.Info("Local document is in sync")
		return nil
	},
}

func init() {
	checkCmd.Flags().StringVar(&checkPaths.source, "source", "", "Source document path")
	checkCmd.Flags().StringVar(&checkPaths.local, "local", "", "Local document path")

	RootCmd.AddCommand(checkCmd)
}
