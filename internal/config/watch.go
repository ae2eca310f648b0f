package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// reloadDelay coalesces the burst of events an editor produces when it
// saves a file.
const reloadDelay = 50 * time.Millisecond

// Watcher reports changes to a settings file.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
}

// NewWatcher starts watching the settings file at path. The containing
// directory is watched so files replaced by rename are still seen.
func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}
	return &Watcher{path: abs, watcher: fsw}, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Run calls fn with the re-resolved configuration after each change to the
// file, or with the error that prevented it. It returns when ctx is done
// and closes the watcher.
func (w *Watcher) Run(ctx context.Context, fn func(Config, error)) {
	defer w.watcher.Close()

	var reload <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return

		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			reload = time.After(reloadDelay)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			fn(Config{}, err)

		case <-reload:
			reload = nil
			fn(Resolve(w.path))
		}
	}
}
