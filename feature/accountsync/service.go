package accountsync

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"account-sync/core/document"
	"account-sync/core/reconcile"
	"account-sync/feature/history"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Recorder persists a summary of each sync run.
type Recorder interface {
	Record(ctx context.Context, run *history.SyncRun) error
}

// Options controls a single sync run.
type Options struct {
	// DryRun computes the report without archiving or writing anything.
	DryRun bool
}

// Result describes a finished sync run.
type Result struct {
	// Report is the reconciliation outcome.
	Report reconcile.Report `json:"report"`
	// Source is where the source-of-truth document was read from.
	Source string `json:"source"`
	// LocalPath is the local document location.
	LocalPath string `json:"local_path"`
	// Accounts is the number of aliases in the merged document.
	Accounts int `json:"accounts"`
	// Changed reports whether the canonical output differs from the current local text.
	Changed bool `json:"changed"`
	// Written reports whether the local document was replaced.
	Written bool `json:"written"`
	// Snapshot is the object key of the archived previous document, if any.
	Snapshot string `json:"snapshot,omitempty"`
	// Output is the serialized document. It contains private keys and is never encoded.
	Output string `json:"-"`
}

// Service reconciles the local document against the source of truth.
type Service struct {
	source    Source
	localPath string
	logger    *zap.Logger
	archiver  *Archiver
	recorder  Recorder
	group     singleflight.Group
}

// NewService creates a new sync service.
func NewService(source Source, localPath string, logger *zap.Logger) *Service {
	return &Service{
		source:    source,
		localPath: localPath,
		logger:    logger,
	}
}

// SetArchiver enables snapshots of the local document before each overwrite.
func (s *Service) SetArchiver(a *Archiver) {
	s.archiver = a
}

// SetRecorder enables run history.
func (s *Service) SetRecorder(r Recorder) {
	s.recorder = r
}

// LocalPath returns the local document location.
func (s *Service) LocalPath() string {
	return s.localPath
}

// SourceLocation returns the source-of-truth location.
func (s *Service) SourceLocation() string {
	return s.source.Location()
}

// Sync reads both documents, merges the source into the local set and, unless
// opts.DryRun is set, replaces the local document with the canonical result.
// Concurrent calls with the same options share one run. The shared run keeps
// the values of the first caller's ctx but not its cancellation, so one caller
// going away cannot fail the others.
func (s *Service) Sync(ctx context.Context, opts Options) (*Result, error) {
	key := "sync"
	if opts.DryRun {
		key = "dry-run"
	}

	shared := context.WithoutCancel(ctx)
	v, err, _ := s.group.Do(key, func() (interface{}, error) {
		return s.sync(shared, opts)
	})
	if err != nil {
		return nil, err
	}
	return v.(*Result), nil
}

func (s *Service) sync(ctx context.Context, opts Options) (*Result, error) {
	started := time.Now()

	// Step 1: source of truth (fatal when missing or empty)
	raw, err := s.source.Read(ctx)
	if err != nil {
		return nil, err
	}
	source := document.Parse(raw)
	if source.Len() == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoAccounts, s.source.Location())
	}

	// Step 2: local document (missing reads as empty)
	localRaw, exists, err := readLocal(s.localPath)
	if err != nil {
		return nil, err
	}
	local := document.Parse(localRaw)

	// Step 3: merge and render; nothing is persisted before this succeeds
	merged, report := reconcile.Reconcile(source, local)
	output := document.Serialize(merged)

	result := &Result{
		Report:    report,
		Source:    s.source.Location(),
		LocalPath: s.localPath,
		Accounts:  merged.Len(),
		Changed:   output != localRaw,
		Output:    output,
	}

	// Step 4: persist
	if !opts.DryRun {
		if s.archiver != nil && exists && result.Changed {
			key, err := s.archiver.Archive(ctx, filepath.Base(s.localPath), localRaw)
			switch {
			case errors.Is(err, ErrPruneFailed):
				// The snapshot is stored; only retention is behind
				s.logger.Warn("Failed to prune old snapshots", zap.String("snapshot", key), zap.Error(err))
			case err != nil:
				return nil, fmt.Errorf("failed to archive local document: %w", err)
			}
			result.Snapshot = key
		}

		if err := writeFileAtomic(s.localPath, []byte(output), 0o600); err != nil {
			return nil, err
		}
		result.Written = true
	}

	s.logResult(result)
	s.record(ctx, result, started, opts)

	return result, nil
}

// Accounts returns the accounts currently stored in the local document.
func (s *Service) Accounts(ctx context.Context) (document.AccountSet, error) {
	text, _, err := readLocal(s.localPath)
	if err != nil {
		return nil, err
	}
	return document.Parse(text), nil
}

func (s *Service) logResult(r *Result) {
	l := s.logger.With(zap.String("source", r.Source), zap.String("local", r.LocalPath))

	for _, c := range r.Report.Filter(reconcile.ChangeMismatch) {
		l.Warn("Mismatch detected (not overwritten; check manually)",
			zap.String("alias", c.Alias),
			zap.String("field", c.Field),
		)
	}

	l.Info("Sync finished",
		zap.Int("added", r.Report.Added),
		zap.Int("filled", r.Report.Filled),
		zap.Int("mismatches", r.Report.Mismatches),
		zap.Int("accounts", r.Accounts),
		zap.Bool("written", r.Written),
	)
}

// record stores the run. The document is already persisted at this point, so
// a history failure is logged and not returned.
func (s *Service) record(ctx context.Context, r *Result, started time.Time, opts Options) {
	if s.recorder == nil {
		return
	}

	run := &history.SyncRun{
		StartedAt:  started,
		DurationMs: time.Since(started).Milliseconds(),
		Source:     r.Source,
		LocalPath:  r.LocalPath,
		Added:      r.Report.Added,
		Filled:     r.Report.Filled,
		Mismatches: r.Report.Mismatches,
		DryRun:     opts.DryRun,
		Written:    r.Written,
		Snapshot:   r.Snapshot,
	}
	if err := s.recorder.Record(ctx, run); err != nil {
		s.logger.Warn("Failed to record sync history", zap.Error(err))
	}
}
