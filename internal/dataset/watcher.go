package dataset

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/Lixing-Zhang/pavilion-catalog/internal/catalog"
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Publisher receives freshly built snapshots
type Publisher interface {
	Replace(c *catalog.Catalog)
}

// WatcherStats tracks reload activity
type WatcherStats struct {
	Events     int       `json:"events"`
	Reloads    int       `json:"reloads"`
	Failures   int       `json:"failures"`
	LastReload time.Time `json:"lastReload"`
	LastError  string    `json:"lastError,omitempty"`
}

// Watcher rebuilds the catalog whenever one of the provider's files changes.
// A failed rebuild keeps the previously published snapshot.
type Watcher struct {
	provider  *Provider
	publisher Publisher
	logger    *zap.Logger
	debounce  time.Duration

	// reloadMu serializes Load+Replace so an older build never publishes last
	reloadMu sync.Mutex

	mu      sync.Mutex
	pending time.Time
	stats   WatcherStats
}

// NewWatcher creates a watcher; changes settle for debounce before a reload
func NewWatcher(provider *Provider, publisher Publisher, logger *zap.Logger, debounce time.Duration) *Watcher {
	return &Watcher{
		provider:  provider,
		publisher: publisher,
		logger:    logger,
		debounce:  debounce,
	}
}

// Reload builds a snapshot from the provider and publishes it
func (w *Watcher) Reload(ctx context.Context) (*catalog.Catalog, error) {
	w.reloadMu.Lock()
	defer w.reloadMu.Unlock()

	c, err := w.provider.Load(ctx)

	w.mu.Lock()
	defer w.mu.Unlock()
	if err != nil {
		w.stats.Failures++
		w.stats.LastError = err.Error()
		return nil, err
	}

	w.publisher.Replace(c)
	w.stats.Reloads++
	w.stats.LastReload = c.LoadedAt
	w.stats.LastError = ""
	return c, nil
}

// Stats returns a copy of the reload counters
func (w *Watcher) Stats() WatcherStats {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stats
}

// Run watches the provider's files until ctx is cancelled.
// It returns immediately when there is nothing on disk to watch.
func (w *Watcher) Run(ctx context.Context) error {
	files := w.provider.Files()
	if len(files) == 0 {
		w.logger.Info("catalog watcher idle, no local dataset files")
		return nil
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer fw.Close()

	// Editors often replace files by rename, so watch the parent directories
	watched := make(map[string]bool, len(files))
	dirs := make(map[string]bool)
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			return fmt.Errorf("failed to resolve %s: %w", f, err)
		}
		watched[abs] = true
		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		if err := fw.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
		dirs[dir] = true
	}

	w.logger.Info("watching catalog files", zap.Strings("files", files), zap.Duration("debounce", w.debounce))

	tick := time.NewTicker(max(w.debounce/4, 10*time.Millisecond))
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil || !watched[abs] {
				continue
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) && !event.Has(fsnotify.Rename) {
				continue
			}
			w.logger.Debug("catalog file changed", zap.String("file", event.Name), zap.String("op", event.Op.String()))
			w.mu.Lock()
			w.stats.Events++
			w.pending = time.Now()
			w.mu.Unlock()

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("catalog watcher error", zap.Error(err))

		case <-tick.C:
			if w.settled() {
				w.reloadAndLog(ctx)
			}
		}
	}
}

// settled reports, and clears, a pending change older than the debounce window
func (w *Watcher) settled() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.pending.IsZero() || time.Since(w.pending) < w.debounce {
		return false
	}
	w.pending = time.Time{}
	return true
}

func (w *Watcher) reloadAndLog(ctx context.Context) {
	c, err := w.Reload(ctx)
	if err != nil {
		w.logger.Error("catalog reload failed, keeping previous snapshot", zap.Error(err))
		return
	}
	w.logger.Info("catalog reloaded",
		zap.String("version", c.Version),
		zap.Int("products", len(c.Products)),
	)
}
