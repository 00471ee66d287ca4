// Package watcher reloads survey data while it is edited externally:
// it watches one point file and reports changes through a debounced
// callback, so a burst of editor writes collapses into a single reload.
package watcher

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// FileWatcher watches a single file for changes
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	path     string
	debounce time.Duration

	mu       sync.Mutex
	timer    *time.Timer
	onChange func()
}

// New creates a watcher for one file. The callback set with OnChange
// fires once per burst of changes, debounce after the last event.
func New(path string, debounce time.Duration) (*FileWatcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	if err := watcher.Add(absPath); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", absPath, err)
	}

	return &FileWatcher{
		watcher:  watcher,
		path:     absPath,
		debounce: debounce,
	}, nil
}

// Path returns the absolute path under watch
func (fw *FileWatcher) Path() string {
	return fw.path
}

// OnChange sets the change callback. It runs on a timer goroutine.
func (fw *FileWatcher) OnChange(callback func()) {
	fw.mu.Lock()
	defer fw.mu.Unlock()
	fw.onChange = callback
}

// Start begins watching for file changes
func (fw *FileWatcher) Start() {
	go func() {
		for {
			select {
			case event, ok := <-fw.watcher.Events:
				if !ok {
					return
				}

				// Editors either write in place or replace the file.
				if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
					fw.bump()
				}

			case err, ok := <-fw.watcher.Errors:
				if !ok {
					return
				}
				fmt.Printf("Watcher error: %v\n", err)
			}
		}
	}()
}

// bump restarts the debounce timer; the callback fires when the file
// has been quiet for the full interval
func (fw *FileWatcher) bump() {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	if fw.timer != nil {
		fw.timer.Stop()
	}

	fw.timer = time.AfterFunc(fw.debounce, func() {
		fw.mu.Lock()
		callback := fw.onChange
		fw.mu.Unlock()

		if callback != nil {
			callback()
		}
	})
}

// Close stops the watcher and any pending notification
func (fw *FileWatcher) Close() error {
	fw.mu.Lock()
	if fw.timer != nil {
		fw.timer.Stop()
	}
	fw.mu.Unlock()

	return fw.watcher.Close()
}
