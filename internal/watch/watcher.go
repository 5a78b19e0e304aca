// Package watch re-runs a puzzle day whenever its input file changes.
// Events are debounced because editors emit several writes per save.
package watch

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const debounceInterval = 500 * time.Millisecond

// InputWatcher watches a single input file and invokes a callback once per
// settled change.
type InputWatcher struct {
	mu       sync.Mutex
	watcher  *fsnotify.Watcher
	path     string
	onChange func()
	logger   *zap.Logger

	lastEvent time.Time
	pending   bool
	running   bool
	stopCh    chan struct{}
	doneCh    chan struct{}
}

// NewInputWatcher creates a watcher for the given input file. The watch is
// placed on the containing directory so the file may be created or replaced
// after the watcher starts.
func NewInputWatcher(path string, onChange func(), logger *zap.Logger) (*InputWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &InputWatcher{
		watcher:  watcher,
		path:     filepath.Clean(path),
		onChange: onChange,
		logger:   logger,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Start begins watching. Non-blocking; the event loop runs in a goroutine.
func (w *InputWatcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	dir := filepath.Dir(w.path)
	if err := w.watcher.Add(dir); err != nil {
		return err
	}
	w.logger.Info("watching input", zap.String("path", w.path))

	go w.run(ctx)
	return nil
}

// Stop stops the watcher and waits for the event loop to exit.
func (w *InputWatcher) Stop() {
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
		w.logger.Error("error closing watcher", zap.Error(err))
	}
}

// run is the watcher event loop.
func (w *InputWatcher) run(ctx context.Context) {
	defer close(w.doneCh)

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

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
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("watch error", zap.Error(err))

		case <-ticker.C:
			w.flushPending()
		}
	}
}

// handleEvent marks a pending change for the watched file.
func (w *InputWatcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.path {
		return
	}
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
		return
	}

	w.logger.Debug("input event", zap.String("op", event.Op.String()))

	w.mu.Lock()
	w.lastEvent = time.Now()
	w.pending = true
	w.mu.Unlock()
}

// flushPending fires the callback once the debounce window has settled.
func (w *InputWatcher) flushPending() {
	w.mu.Lock()
	fire := w.pending && time.Since(w.lastEvent) >= debounceInterval
	if fire {
		w.pending = false
	}
	w.mu.Unlock()

	if fire {
		w.onChange()
	}
}
