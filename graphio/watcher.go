// SPDX-License-Identifier: MIT

package graphio

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/katalvlaran/mstforest/ctxlog"
)

// DefaultDebounce is the quiet period a file must observe before a Change fires.
const DefaultDebounce = 100 * time.Millisecond

// Change reports that the watched file was written, recreated or removed.
type Change struct {
	Path    string
	Removed bool
}

// Watcher monitors a single graph file using fsnotify. It watches the parent
// directory so editors that replace the file by rename are still observed.
type Watcher struct {
	Path     string
	Debounce time.Duration
	Changes  <-chan Change // read-only external channel

	changes chan Change
	stop    chan struct{}
	done    chan struct{}
	watcher *fsnotify.Watcher
	once    sync.Once
	started bool
}

// NewWatcher creates a watcher for the file at path.
func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: watch %s: %w", path, err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("graphio: watch %s: %w", path, err)
	}

	ch := make(chan Change, 16)

	return &Watcher{
		Path:     abs,
		Debounce: DefaultDebounce,
		Changes:  ch,
		changes:  ch,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
		watcher:  fw,
	}, nil
}

// Start begins watching. The loop ends when ctx is cancelled or Stop is called.
func (w *Watcher) Start(ctx context.Context) error {
	if err := w.watcher.Add(filepath.Dir(w.Path)); err != nil {
		return fmt.Errorf("graphio: watch %s: %w", w.Path, err)
	}
	w.started = true
	go w.loop(ctx)

	return nil
}

// Stop closes the watcher, waits for the loop to exit and closes Changes.
// It is safe to call more than once.
func (w *Watcher) Stop() {
	w.once.Do(func() {
		close(w.stop)
		_ = w.watcher.Close()
		if w.started {
			<-w.done
		}
		close(w.changes)
	})
}

func (w *Watcher) loop(ctx context.Context) {
	defer close(w.done)
	logger := ctxlog.FromContext(ctx)

	debounce := w.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	var pending time.Time
	ticker := time.NewTicker(debounce / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				if !pending.IsZero() {
					w.emit(ctx)
				}
				return
			}
			if filepath.Clean(event.Name) != w.Path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
				event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				pending = time.Now()
			}

		case <-ticker.C:
			if !pending.IsZero() && time.Since(pending) >= debounce {
				pending = time.Time{}
				w.emit(ctx)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("File watch error.", "path", w.Path, "error", err)
		}
	}
}

func (w *Watcher) emit(ctx context.Context) {
	_, err := os.Stat(w.Path)
	c := Change{Path: w.Path, Removed: errors.Is(err, os.ErrNotExist)}
	select {
	case w.changes <- c:
	case <-ctx.Done():
	case <-w.stop:
	}
}
