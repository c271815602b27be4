package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"account-sync/core/reconcile"
	"account-sync/feature/accountsync"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the sync command
	syncDryRun bool
	syncWatch  bool
	syncPaths  pathOverrides
)

// syncCmd merges the source-of-truth document into the local document.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Sync the local account document from the wallet configuration",
	Long: `Reads the wallet configuration, merges its accounts into the local
document and rewrites it in canonical form.

Accounts missing locally are added and empty fields are filled. Values that
differ on both sides are reported as mismatches and left untouched.

Examples:
  # Report only
  account-sync sync --dry-run

  # Custom locations
  account-sync sync --source ~/.shelby/config.yaml --local ./pk.txt

  # Keep syncing whenever the wallet configuration changes
  account-sync sync --watch`,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().BoolVar(&syncDryRun, "dry-run", false, "Compute the report without writing")
	syncCmd.Flags().BoolVar(&syncWatch, "watch", false, "Sync again whenever the source document changes")
	syncCmd.Flags().StringVar(&syncPaths.source, "source", "", "Source document path (default ~/.shelby/config.yaml)")
	syncCmd.Flags().StringVar(&syncPaths.local, "local", "", "Local document path (default pk.txt)")

	RootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rt, err := newRuntime(ctx, syncPaths)
	if err != nil {
		return err
	}
	defer rt.logger.Sync()

	res, err := rt.service.Sync(ctx, accountsync.Options{DryRun: syncDryRun})
	if err != nil && !syncWatch {
		return err
	}
	if err != nil {
		rt.logger.Warn("Initial sync failed, waiting for changes", zap.Error(err))
	} else {
		printSyncReport(rt.logger, res, syncDryRun)
	}

	if !syncWatch {
		return nil
	}
	if rt.cfg.Sync.SourceObject != "" {
		return fmt.Errorf("--watch needs a local source document")
	}

	opts := accountsync.Options{DryRun: syncDryRun}
	w, err := accountsync.NewWatcher(rt.service, rt.service.SourceLocation(), rt.cfg.Sync.WatchDebounce, opts, rt.logger)
	if err != nil {
		return err
	}
	w.OnSync(func(res *accountsync.Result, err error) {
		if err == nil {
			printSyncReport(rt.logger, res, opts.DryRun)
		}
	})
	if err := w.Start(ctx); err != nil {
		return err
	}

	<-ctx.Done()
	rt.logger.Info("Stopping watcher...")
	w.Stop()
	return nil
}

// printSyncReport logs the result and prints a short summary for humans.
func printSyncReport(l *zap.Logger, res *accountsync.Result, dryRun bool) {
	r := res.Report

	l.Info("Sync report",
		zap.String("source", res.Source),
		zap.String("local", res.LocalPath),
		zap.Int("added", r.Added),
		zap.Int("filled", r.Filled),
		zap.Int("mismatches", r.Mismatches),
	)

	for _, c := range r.Changes {
		switch c.Type {
		case reconcile.ChangeMismatch:
			color.Yellow("  ! %s %s: %s", c.Alias, c.Field, c.Reason)
		case reconcile.ChangeAdd:
			color.Green("  + %s", c.Alias)
		case reconcile.ChangeFill:
			color.Cyan("  ~ %s %s", c.Alias, c.Field)
		}
	}

	summary := fmt.Sprintf("Added: %d, Filled: %d, Mismatches: %d", r.Added, r.Filled, r.Mismatches)
	switch {
	case dryRun:
		fmt.Printf("%s (dry-run, %s not modified)\n", summary, res.LocalPath)
	case res.Written:
		color.Green("%s -> %s", summary, res.LocalPath)
	default:
		fmt.Println(summary)
	}

	if r.Mismatches > 0 {
		color.Yellow("Mismatches were not overwritten; check %s manually.", res.LocalPath)
	}
}
