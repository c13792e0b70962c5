// Package watcher re-runs analysis when watched source files change.
// fsnotify watches directories, so each file's parent directory is added and
// events are filtered back down to the files of interest. Bursts of events
// (editors write, rename, and chmod in quick succession) are collapsed by a
// debouncer before the handler runs.
package watcher

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Handler receives the set of changed file paths after each quiet period.
type Handler func(paths []string)

// Watcher watches a fixed set of files.
type Watcher struct {
	fs        *fsnotify.Watcher
	debounce  time.Duration
	files     map[string]bool
	debouncer *debouncer
	done      chan struct{}
}

// New creates a Watcher with the given debounce window.
func New(debounce time.Duration) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watcher: create: %w", err)
	}
	return &Watcher{
		fs:        fs,
		debounce:  debounce,
		files:     make(map[string]bool),
		debouncer: newDebouncer(debounce),
		done:      make(chan struct{}),
	}, nil
}

// Watch registers paths and starts delivering change sets to handler until
// Close is called.
func (w *Watcher) Watch(paths []string, handler Handler) error {
	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return fmt.Errorf("watcher: resolve %s: %w", p, err)
		}
		w.files[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := w.fs.Add(dir); err != nil {
			return fmt.Errorf("watcher: watch %s: %w", dir, err)
		}
	}
	go w.eventLoop(handler)
	return nil
}

// Close stops event delivery.
func (w *Watcher) Close() error {
	close(w.done)
	w.debouncer.stop()
	return w.fs.Close()
}

func (w *Watcher) eventLoop(handler Handler) {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			w.handleEvent(event, handler)
		case _, ok := <-w.fs.Errors:
			if !ok {
				return
			}
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event, handler Handler) {
	if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Rename) {
		return
	}
	abs, err := filepath.Abs(event.Name)
	if err != nil || !w.files[abs] {
		return
	}
	w.debouncer.add(abs, handler)
}
