// Package watch re-runs a callback when watched files change on disk.
package watch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/yaklabco/apidirlint/internal/logging"
)

// DefaultDebounce is the quiet period after the last event before the
// callback runs.
const DefaultDebounce = 200 * time.Millisecond

// ErrClosed is returned when the underlying watcher shuts down unexpectedly.
var ErrClosed = errors.New("watcher closed")

// ChangeFunc is called with the changed files, sorted, after each quiet period.
type ChangeFunc func(ctx context.Context, paths []string)

// Watcher watches a fixed set of files.
//
// Parent directories are watched rather than the files themselves so that
// editors which save by renaming a temporary file are still seen.
type Watcher struct {
	fsw      *fsnotify.Watcher
	debounce time.Duration

	// files maps cleaned absolute paths to the path as given by the caller.
	files map[string]string
}

// New creates a Watcher for paths. A non-positive debounce uses DefaultDebounce.
func New(paths []string, debounce time.Duration) (*Watcher, error) {
	if len(paths) == 0 {
		return nil, errors.New("no files to watch")
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	files := make(map[string]string, len(paths))
	var dirs []string
	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", path, err)
		}
		files[abs] = path
		if dir := filepath.Dir(abs); !slices.Contains(dirs, dir) {
			dirs = append(dirs, dir)
		}
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}

	for _, dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			_ = fsw.Close()
			return nil, fmt.Errorf("watch %s: %w", dir, err)
		}
	}

	return &Watcher{fsw: fsw, debounce: debounce, files: files}, nil
}

// Run delivers debounced changes to onChange until ctx is cancelled.
// onChange runs on the calling goroutine; events arriving meanwhile are
// batched into the next call.
func (w *Watcher) Run(ctx context.Context, onChange ChangeFunc) error {
	log := logging.FromContext(ctx)

	pending := make(map[string]bool)
	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fsw.Events:
			if !ok {
				return ErrClosed
			}
			path, relevant := w.relevant(event)
			if !relevant {
				continue
			}
			log.Debug("file event", logging.FieldPath, path, logging.FieldEvent, event.Op.String())
			pending[path] = true
			timer.Reset(w.debounce)

		case <-timer.C:
			if len(pending) == 0 {
				continue
			}
			changed := make([]string, 0, len(pending))
			for path := range pending {
				changed = append(changed, path)
			}
			clear(pending)
			slices.Sort(changed)
			onChange(ctx, changed)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return ErrClosed
			}
			// Overflow and similar errors are not fatal.
			log.Warn("watch error", logging.FieldError, err)
		}
	}
}

// relevant reports whether event concerns a watched file and returns the
// file's path as the caller named it.
func (w *Watcher) relevant(event fsnotify.Event) (string, bool) {
	if event.Op == fsnotify.Chmod {
		return "", false
	}
	path, ok := w.files[filepath.Clean(event.Name)]
	return path, ok
}

// Close releases the underlying watcher.
func (w *Watcher) Close() error {
	if err := w.fsw.Close(); err != nil {
		return fmt.Errorf("close watcher: %w", err)
	}
	return nil
}
