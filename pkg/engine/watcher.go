package engine

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/fusabi-lang/fusabi-tui-runtime/pkg/errors"
)

// FileWatcher watches dashboard source files through fsnotify and
// reports changes on poll, debounced so rapid editor saves coalesce
// into a single change.
type FileWatcher struct {
	fsw      *fsnotify.Watcher
	debounce time.Duration

	mu       sync.Mutex
	watched  map[string]bool
	dirs     map[string]bool
	pending  map[string]time.Time
	closed   bool
	done     chan struct{}
	lastErr  error
}

// NewFileWatcher creates a watcher with the given debounce window.
func NewFileWatcher(debounce time.Duration) (*FileWatcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeWatchInit, "failed to initialize file watcher")
	}
	w := &FileWatcher{
		fsw:      fsw,
		debounce: debounce,
		watched:  make(map[string]bool),
		dirs:     make(map[string]bool),
		pending:  make(map[string]time.Time),
		done:     make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Watch registers a file. The containing directory is watched so
// rename-and-replace saves are still observed.
func (w *FileWatcher) Watch(path string) error {
	resolved := filepath.Clean(path)
	dir := filepath.Dir(resolved)

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return errors.New(errors.ErrCodeWatchTarget, "watcher is closed").WithPath(resolved)
	}
	if w.watched[resolved] {
		return nil
	}
	if !w.dirs[dir] {
		if err := w.fsw.Add(dir); err != nil {
			return errors.Wrap(err, errors.ErrCodeWatchTarget, "failed to watch directory").WithPath(dir)
		}
		w.dirs[dir] = true
	}
	w.watched[resolved] = true
	return nil
}

// Watching reports whether path is registered.
func (w *FileWatcher) Watching(path string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.watched[filepath.Clean(path)]
}

// Poll drains the set of watched paths whose changes have settled past
// the debounce window. Returns nil when nothing is ready.
func (w *FileWatcher) Poll() []string {
	now := time.Now()
	w.mu.Lock()
	defer w.mu.Unlock()

	var changed []string
	for path, last := range w.pending {
		if now.Sub(last) >= w.debounce {
			changed = append(changed, path)
			delete(w.pending, path)
		}
	}
	return changed
}

// Err returns the most recent background watch error and clears it, so
// each error is reported once.
func (w *FileWatcher) Err() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	err := w.lastErr
	w.lastErr = nil
	return err
}

// Close stops watching. Poll returns nothing afterwards.
func (w *FileWatcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.done)
	w.mu.Unlock()
	return w.fsw.Close()
}

func (w *FileWatcher) run() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			path := filepath.Clean(event.Name)
			w.mu.Lock()
			if w.watched[path] {
				w.pending[path] = time.Now()
			}
			w.mu.Unlock()
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.mu.Lock()
			w.lastErr = errors.Wrap(err, errors.ErrCodeWatchTarget, "file watch error")
			w.mu.Unlock()
		}
	}
}
