// Package watch reports which of a small set of directories changed on disk.
package watch

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"zeta/internal/logging"
)

// DefaultWindow is how long events for one directory are collected before a
// single change is reported.
const DefaultWindow = 200 * time.Millisecond

// Watcher monitors directories and emits the path of each directory whose
// contents changed, at most once per window.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	window    time.Duration
	changes   chan string
	stop      chan struct{}
	stopped   chan struct{}
	closeOnce sync.Once

	mu   sync.RWMutex
	dirs map[string]bool
}

// New starts a watcher with no directories. A window <= 0 uses DefaultWindow.
func New(window time.Duration) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}
	if window <= 0 {
		window = DefaultWindow
	}
	w := &Watcher{
		fsWatcher: fsWatcher,
		window:    window,
		changes:   make(chan string, 4),
		stop:      make(chan struct{}),
		stopped:   make(chan struct{}),
		dirs:      make(map[string]bool),
	}
	go w.loop()
	return w, nil
}

// Changes delivers changed directory paths. It is closed by Close.
func (w *Watcher) Changes() <-chan string {
	return w.changes
}

// Watch replaces the watched set with paths. Directories that cannot be
// watched are skipped and reported in the returned error.
func (w *Watcher) Watch(paths ...string) error {
	want := make(map[string]bool, len(paths))
	for _, p := range paths {
		if p != "" {
			want[filepath.Clean(p)] = true
		}
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	for dir := range w.dirs {
		if !want[dir] {
			// the directory may already be gone, which removes the watch anyway
			_ = w.fsWatcher.Remove(dir)
			delete(w.dirs, dir)
		}
	}
	var errs []error
	for dir := range want {
		if w.dirs[dir] {
			continue
		}
		if err := w.fsWatcher.Add(dir); err != nil {
			errs = append(errs, fmt.Errorf("watch %s: %w", dir, err))
			continue
		}
		w.dirs[dir] = true
		logging.L().Debug().Str("dir", dir).Msg("watching directory")
	}
	return errors.Join(errs...)
}

// Close stops the watcher and closes Changes.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.stop)
		err = w.fsWatcher.Close()
		<-w.stopped
	})
	return err
}

func (w *Watcher) watching(dir string) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.dirs[dir]
}

func (w *Watcher) loop() {
	defer close(w.stopped)
	defer close(w.changes)

	pending := make(map[string]struct{})
	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			dir := filepath.Dir(event.Name)
			if !w.watching(dir) {
				if !w.watching(event.Name) {
					continue
				}
				dir = event.Name
			}
			pending[dir] = struct{}{}
			if fire == nil {
				timer = time.NewTimer(w.window)
				fire = timer.C
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			logging.L().Warn().Err(err).Msg("fsnotify watcher error")

		case <-fire:
			fire = nil
			for dir := range pending {
				delete(pending, dir)
				select {
				case w.changes <- dir:
				case <-w.stop:
					return
				}
			}

		case <-w.stop:
			return
		}
	}
}
