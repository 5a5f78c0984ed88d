package watcher

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// FileWatcher reports model files that changed, debounced per file.
// Callbacks never run concurrently.
type FileWatcher struct {
	watcher   *fsnotify.Watcher
	mu        sync.Mutex
	runMu     sync.Mutex
	callbacks map[string]func(string)
	debounce  time.Duration
	timers    map[string]*time.Timer
}

// New creates a file watcher that waits debounce after the last write
// before firing a callback
func New(debounce time.Duration) (*FileWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create watcher")
	}

	return &FileWatcher{
		watcher:   w,
		callbacks: make(map[string]func(string)),
		debounce:  debounce,
		timers:    make(map[string]*time.Timer),
	}, nil
}

// Watch registers callback for the given files. The directory of each file
// is watched so that editors replacing the file by rename are noticed.
func (fw *FileWatcher) Watch(files []string, callback func(string)) error {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	for _, file := range files {
		absPath, err := filepath.Abs(file)
		if err != nil {
			return errors.Wrapf(err, "failed to resolve path %s", file)
		}

		if err := fw.watcher.Add(filepath.Dir(absPath)); err != nil {
			return errors.Wrapf(err, "failed to watch %s", absPath)
		}

		fw.callbacks[absPath] = callback
	}

	return nil
}

// Run dispatches change events until ctx is done or the watcher is closed
func (fw *FileWatcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			fw.stopTimers()
			return ctx.Err()

		case event, ok := <-fw.watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				fw.handleFileChange(event.Name)
			}

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return nil
			}
			log.WithError(err).Warn("watcher error")
		}
	}
}

// handleFileChange restarts the debounce timer of a watched file
func (fw *FileWatcher) handleFileChange(path string) {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	absPath, err := filepath.Abs(path)
	if err != nil {
		return
	}
	callback, exists := fw.callbacks[absPath]
	if !exists {
		return
	}

	if timer, exists := fw.timers[absPath]; exists {
		timer.Stop()
	}

	log.WithField("file", absPath).Debug("change detected")
	fw.timers[absPath] = time.AfterFunc(fw.debounce, func() {
		fw.runMu.Lock()
		defer fw.runMu.Unlock()
		callback(absPath)
	})
}

func (fw *FileWatcher) stopTimers() {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	for _, timer := range fw.timers {
		timer.Stop()
	}
	fw.timers = make(map[string]*time.Timer)
}

// Close stops the watcher
func (fw *FileWatcher) Close() error {
	fw.stopTimers()
	return fw.watcher.Close()
}
