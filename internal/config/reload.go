// SPDX-License-Identifier: MIT

package config

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	xglog "github.com/ManuGH/displbe/internal/log"
	"github.com/ManuGH/displbe/internal/metrics"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

const reloadDebounce = 500 * time.Millisecond

// Holder owns the current Store and replaces it as a whole on reload.
// Stores themselves stay immutable; consumers call Get for each lookup batch.
type Holder struct {
	mu      sync.RWMutex
	current *Store
	path    string
	opts    []Option
	logger  zerolog.Logger

	watchMu  sync.Mutex
	watcher  *fsnotify.Watcher
	stopOnce sync.Once
	done     chan struct{}

	reloadMu        sync.RWMutex
	reloadListeners []chan<- *Store
}

// NewHolder wraps an already loaded store. Reloads re-read initial.Path()
// with opts; pass the options used for the initial Load.
func NewHolder(initial *Store, opts ...Option) *Holder {
	return &Holder{
		current: initial,
		path:    initial.Path(),
		opts:    opts,
		logger:  buildOptions(opts).log(),
	}
}

// Get returns the current store (thread-safe read).
func (h *Holder) Get() *Store {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.current
}

// Reload loads the file again. If loading fails the previous store is kept
// and the error is returned.
func (h *Holder) Reload(_ context.Context) error {
	h.logger.Info().Str(xglog.FieldEvent, "config.reload_start").Msg("reloading configuration")

	next, err := Load(h.path, h.opts...)
	if err != nil {
		metrics.IncConfigReload(metrics.ResultError)
		h.logger.Error().
			Err(err).
			Str(xglog.FieldEvent, "config.reload_failed").
			Msg("failed to load new configuration, keeping previous")
		return fmt.Errorf("reload config: %w", err)
	}

	h.mu.Lock()
	prev := h.current
	h.current = next
	h.mu.Unlock()

	h.notifyListeners(next)
	h.logChanges(prev.Summary(), next.Summary())

	metrics.IncConfigReload(metrics.ResultOK)
	h.logger.Info().
		Str(xglog.FieldEvent, "config.reload_success").
		Msg("configuration reloaded successfully")
	return nil
}

// StartWatcher reloads the store whenever its file is written or recreated.
// Stores built by Parse have no file and are not watched.
func (h *Holder) StartWatcher(ctx context.Context) error {
	if h.path == memorySource {
		h.logger.Info().
			Str(xglog.FieldEvent, "config.watcher_disabled").
			Msg("config file watcher disabled (in-memory configuration)")
		return nil
	}

	h.watchMu.Lock()
	defer h.watchMu.Unlock()
	if h.watcher != nil {
		return fmt.Errorf("watcher already started")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	// Watch the directory: atomic replacements rename over the file and would
	// drop a watch placed on the file itself.
	if err := watcher.Add(filepath.Dir(h.path)); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("watch config file: %w", err)
	}

	h.watcher = watcher
	h.done = make(chan struct{})

	h.logger.Info().
		Str(xglog.FieldEvent, "config.watcher_started").
		Str(xglog.FieldPath, h.path).
		Msg("watching config file for changes")

	go h.watchLoop(ctx, watcher, h.done)
	return nil
}

func (h *Holder) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, done chan struct{}) {
	defer close(done)

	// Editors emit bursts of events; reload once per burst.
	var debounce *time.Timer
	var fire <-chan time.Time
	defer func() {
		if debounce != nil {
			debounce.Stop()
		}
		_ = watcher.Close()
	}()

	for {
		select {
		case <-ctx.Done():
			h.logger.Info().Str(xglog.FieldEvent, "config.watcher_stopped").Msg("config watcher stopped")
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != h.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			h.logger.Debug().
				Str(xglog.FieldEvent, "config.file_changed").
				Str("op", event.Op.String()).
				Msg("config file changed")
			if debounce == nil {
				debounce = time.NewTimer(reloadDebounce)
			} else {
				if !debounce.Stop() {
					select {
					case <-debounce.C:
					default:
					}
				}
				debounce.Reset(reloadDebounce)
			}
			fire = debounce.C

		case <-fire:
			fire = nil
			if err := h.Reload(ctx); err != nil {
				h.logger.Error().
					Err(err).
					Str(xglog.FieldEvent, "config.auto_reload_failed").
					Msg("automatic config reload failed")
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			h.logger.Error().
				Err(err).
				Str(xglog.FieldEvent, "config.watcher_error").
				Msg("config watcher error")
		}
	}
}

// Stop closes the watcher and waits for its goroutine to exit.
func (h *Holder) Stop() {
	h.watchMu.Lock()
	watcher, done := h.watcher, h.done
	h.watchMu.Unlock()
	if watcher == nil {
		return
	}
	h.stopOnce.Do(func() {
		_ = watcher.Close()
	})
	<-done
}

// RegisterListener registers a channel to receive each successfully reloaded store.
// Sends never block; a full channel misses the update. The caller owns the channel.
func (h *Holder) RegisterListener(ch chan<- *Store) {
	h.reloadMu.Lock()
	defer h.reloadMu.Unlock()
	h.reloadListeners = append(h.reloadListeners, ch)
}

func (h *Holder) notifyListeners(next *Store) {
	h.reloadMu.RLock()
	defer h.reloadMu.RUnlock()

	for _, ch := range h.reloadListeners {
		select {
		case ch <- next:
		default:
			h.logger.Warn().
				Str(xglog.FieldEvent, "config.listener_skip").
				Msg("skipped notifying listener (channel full)")
		}
	}
}

func (h *Holder) logChanges(prev, next Summary) {
	if prev.Mode != next.Mode {
		h.logger.Info().
			Str("old", prev.Mode.String()).
			Str("new", next.Mode.String()).
			Msg("config changed: display mode")
	}
	counts := []struct {
		name          string
		before, after int
	}{
		{"connectors", prev.Connectors, next.Connectors},
		{"keyboards", prev.Keyboards, next.Keyboards},
		{"pointers", prev.Pointers, next.Pointers},
		{"touches", prev.Touches, next.Touches},
	}
	for _, c := range counts {
		if c.before != c.after {
			h.logger.Info().
				Int("old", c.before).
				Int("new", c.after).
				Msg("config changed: " + c.name)
		}
	}
}
