package accountsync

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher re-runs Sync whenever the source document changes on disk, e.g.
// after the wallet CLI creates a new account.
type Watcher struct {
	mu       sync.Mutex
	service  *Service
	watcher  *fsnotify.Watcher
	target   string
	debounce time.Duration
	opts     Options
	logger   *zap.Logger
	onSync   func(*Result, error)
	stopCh   chan struct{}
	doneCh   chan struct{}
	running  bool
}

// NewWatcher creates a watcher for the source file at path. Every
// watch-triggered sync runs with opts.
func NewWatcher(service *Service, path string, debounce time.Duration, opts Options, logger *zap.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if debounce <= 0 {
		debounce = 500 * time.Millisecond
	}

	return &Watcher{
		service:  service,
		watcher:  fw,
		target:   filepath.Clean(path),
		debounce: debounce,
		opts:     opts,
		logger:   logger,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// OnSync registers a callback invoked after every watch-triggered sync.
// It must be set before Start.
func (w *Watcher) OnSync(fn func(*Result, error)) {
	w.onSync = fn
}

// Start watches the directory holding the source file. Editors and the wallet
// CLI often replace the file, so watching the file itself would lose track.
// This method is non-blocking.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return nil
	}

	dir := filepath.Dir(w.target)
	if err := w.watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	w.running = true
	w.logger.Info("Watching source document", zap.String("path", w.target))

	go w.run(ctx)
	return nil
}

// Stop stops the watcher and waits for the event loop to exit.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh

	if err := w.watcher.Close(); err != nil {
		w.logger.Warn("Error closing file watcher", zap.Error(err))
	}
}

// Done is closed when the event loop exits.
func (w *Watcher) Done() <-chan struct{} {
	return w.doneCh
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case <-w.stopCh:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			// Debounce bursts of writes into one sync
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("File watcher error", zap.Error(err))

		case <-fire:
			fire = nil
			w.trigger(ctx)
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.target {
		return false
	}
	return event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0
}

func (w *Watcher) trigger(ctx context.Context) {
	w.logger.Debug("Source document changed, syncing",
		zap.String("path", w.target),
		zap.Bool("dry_run", w.opts.DryRun),
	)

	res, err := w.service.Sync(ctx, w.opts)
	if err != nil {
		// The source may be mid-rewrite; the next event retries.
		w.logger.Warn("Watch-triggered sync failed", zap.Error(err))
	}
	if w.onSync != nil {
		w.onSync(res, err)
	}
}
