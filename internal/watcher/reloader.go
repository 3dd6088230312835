package watcher

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/docsrv/docsrv/internal/catalog"
	"github.com/docsrv/docsrv/internal/logging"
	"github.com/docsrv/docsrv/internal/metrics"
	"github.com/docsrv/docsrv/internal/resolver"
	"github.com/docsrv/docsrv/internal/scanner"
	"github.com/docsrv/docsrv/internal/store"
)

// Reloader rebuilds the catalog when the template source tree changes
// and swaps the result into the store.
//
// The cycle is a small state machine: idle until a filesystem event
// arrives, pending while the debounce timer re-arms on further events,
// rebuilding once the timer elapses, then idle again. A successful
// rebuild swaps before returning to idle; a failed one reports the
// error and leaves the store untouched. Rebuilds are serialized by
// running on the watcher's single processing goroutine, so events
// arriving mid-rebuild queue for the next debounce cycle.
type Reloader struct {
	store    *store.Store
	resolver *resolver.Resolver
	root     string
	watcher  *FileWatcher
	logger   logging.Logger
	metrics  *metrics.Metrics

	// onSwap is invoked after each successful swap, e.g. to notify
	// live-reload clients. May be nil.
	onSwap func()

	debounce time.Duration
	started  atomic.Bool
}

// Option configures a Reloader.
type Option func(*Reloader)

// WithMetrics records reload outcomes on m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(r *Reloader) { r.metrics = m }
}

// WithSwapHook runs fn after every successful swap.
func WithSwapHook(fn func()) Option {
	return func(r *Reloader) { r.onSwap = fn }
}

// WithDebounce overrides the default debounce window.
func WithDebounce(d time.Duration) Option {
	return func(r *Reloader) { r.debounce = d }
}

// NewReloader creates a reloader for the given store and template
// root.
func NewReloader(s *store.Store, res *resolver.Resolver, root string, logger logging.Logger, opts ...Option) *Reloader {
	r := &Reloader{
		store:    s,
		resolver: res,
		root:     root,
		logger:   logger.WithComponent("reloader"),
		debounce: DefaultDebounce,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// StartWatching begins the background reload loop. It is idempotent:
// only the first call establishes the watch. Failure to establish it
// is returned (and logged) but the caller is expected to keep serving
// with the last good catalog; reload capability is simply lost.
func (r *Reloader) StartWatching(ctx context.Context) error {
	if !r.started.CompareAndSwap(false, true) {
		return nil
	}

	fw, err := NewFileWatcher(r.debounce, r.logger)
	if err != nil {
		r.logger.Error(ctx, err, "failed to create filesystem watcher, template reloading disabled")
		return err
	}

	fw.AddFilter(NoHiddenFilter)
	fw.AddFilter(NoBackupFilter)
	fw.AddHandler(r.handleChanges)

	if err := fw.AddRecursive(r.root); err != nil {
		r.logger.Error(ctx, err, "failed to watch template root, template reloading disabled", "root", r.root)
		_ = fw.Stop()
		return err
	}

	r.watcher = fw
	fw.Start(ctx)
	r.logger.Info(ctx, "watching templates", "root", r.root, "debounce", r.debounce.String())
	return nil
}

// Stop tears down the watch. Intended for process shutdown.
func (r *Reloader) Stop() error {
	if r.watcher == nil {
		return nil
	}
	return r.watcher.Stop()
}

// Rebuild performs one scan-build-swap cycle. On failure the store is
// left untouched and the error is returned for reporting; the
// previous catalog keeps serving.
func (r *Reloader) Rebuild(ctx context.Context) error {
	files, err := scanner.Scan(r.root)
	if err != nil {
		return err
	}

	vals := r.resolver.Resolve(ctx)
	cat, err := catalog.Build(files, catalog.DefaultRegistrations(vals, r.logger))
	if err != nil {
		return err
	}

	r.store.Swap(cat)
	if r.onSwap != nil {
		r.onSwap()
	}
	return nil
}

func (r *Reloader) handleChanges(ctx context.Context, events []ChangeEvent) error {
	r.logger.Debug(ctx, "template changes detected", "count", len(events))

	if err := r.Rebuild(ctx); err != nil {
		// Non-fatal: the previous catalog keeps serving.
		if r.metrics != nil {
			r.metrics.ReloadFailed()
		}
		r.logger.Error(ctx, err, "failed to reload templates")
		return nil
	}

	if r.metrics != nil {
		r.metrics.ReloadSucceeded(r.store.Current().Len())
	}
	r.logger.Info(ctx, "reloaded templates", "templates", r.store.Current().Len())
	return nil
}
