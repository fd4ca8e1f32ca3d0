package sync

import (
	"fmt"
	"path/filepath"
	gosync "sync"
	"time"

	"github.com/MikeBiancalana/datekit/internal/config"
	"github.com/MikeBiancalana/datekit/internal/logger"
	"github.com/fsnotify/fsnotify"
)

const debounceDelay = 100 * time.Millisecond

// ReloadEvent carries the settings read after the config file changed. Err
// is set when the new file could not be loaded; the previous settings stay
// in effect in that case.
type ReloadEvent struct {
	FilePath string
	Settings config.Settings
	Err      error
}

// Watcher watches the settings file for changes
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
	changes chan ReloadEvent
	done    chan struct{}

	mu            gosync.Mutex
	debounceTimer *time.Timer
	stopOnce      gosync.Once
}

// NewWatcher creates a watcher for the settings file at path
func NewWatcher(path string) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	return &Watcher{
		watcher: fsWatcher,
		path:    filepath.Clean(path),
		changes: make(chan ReloadEvent, 4),
		done:    make(chan struct{}),
	}, nil
}

// Start begins watching. The parent directory is watched rather than the
// file, so editors that replace the file on save are still seen.
func (w *Watcher) Start() error {
	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("failed to watch directory: %w", err)
	}

	go w.watch()
	return nil
}

// Stop stops the watcher. It is safe to call more than once.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.done)
		w.mu.Lock()
		if w.debounceTimer != nil {
			w.debounceTimer.Stop()
		}
		w.mu.Unlock()
		w.watcher.Close()
	})
}

// Changes returns the channel for reload notifications
func (w *Watcher) Changes() <-chan ReloadEvent {
	return w.changes
}

// Done is closed once Stop has been called.
func (w *Watcher) Done() <-chan struct{} {
	return w.done
}

// Path returns the watched file.
func (w *Watcher) Path() string {
	return w.path
}

func (w *Watcher) watch() {
	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}

			w.mu.Lock()
			if w.debounceTimer != nil {
				w.debounceTimer.Stop()
			}
			w.debounceTimer = time.AfterFunc(debounceDelay, w.reload)
			w.mu.Unlock()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Log error but continue watching
			logger.Warn("config_watch_error", "path", w.path, "error", err)
		}
	}
}

// reload runs after the debounce delay and publishes the new settings.
func (w *Watcher) reload() {
	settings, err := config.LoadFile(w.path)
	if err != nil {
		logger.Warn("config_reload_failed", "path", w.path, "error", err)
	} else {
		logger.Debug("config_reloaded", "path", w.path)
	}

	ev := ReloadEvent{FilePath: w.path, Settings: settings, Err: err}
	select {
	case w.changes <- ev:
	case <-w.done:
	}
}
