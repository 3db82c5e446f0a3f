// Package watcher provides file change watching for wordsift's watch
// mode, with debouncing so a burst of editor writes triggers one
// re-filter instead of many.
package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ChangeEvent represents a change to the watched file
type ChangeEvent struct {
	Type    EventType
	Path    string
	ModTime time.Time
}

// EventType represents the type of file change
type EventType int

const (
	EventTypeCreated EventType = iota
	EventTypeModified
	EventTypeDeleted
	EventTypeRenamed
)

// String returns the string representation of the EventType
func (e EventType) String() string {
	switch e {
	case EventTypeCreated:
		return "created"
	case EventTypeModified:
		return "modified"
	case EventTypeDeleted:
		return "deleted"
	case EventTypeRenamed:
		return "renamed"
	default:
		return "unknown"
	}
}

// ChangeHandler handles debounced file change events
type ChangeHandler func(events []ChangeEvent) error

// FileWatcher watches a single file for changes with debouncing.
// The parent directory is watched rather than the file itself, since
// editors commonly replace files by rename, which would otherwise
// drop the watch.
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	target   string
	delay    time.Duration
	handlers []ChangeHandler

	mutex   sync.Mutex
	pending []ChangeEvent
	timer   *time.Timer
}

// NewFileWatcher creates a watcher for path with the given debounce delay.
func NewFileWatcher(path string, debounceDelay time.Duration) (*FileWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve watch path: %w", err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	return &FileWatcher{
		watcher: w,
		target:  abs,
		delay:   debounceDelay,
	}, nil
}

// AddHandler registers a handler for debounced change batches.
func (fw *FileWatcher) AddHandler(handler ChangeHandler) {
	fw.mutex.Lock()
	defer fw.mutex.Unlock()
	fw.handlers = append(fw.handlers, handler)
}

// Start processes events until ctx is cancelled or the watcher closes.
func (fw *FileWatcher) Start(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return nil
			}
			fw.handleEvent(event)
		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return nil
			}
			if err != nil {
				return fmt.Errorf("watch error: %w", err)
			}
		}
	}
}

// Stop closes the underlying watcher and cancels any pending flush.
func (fw *FileWatcher) Stop() error {
	fw.mutex.Lock()
	if fw.timer != nil {
		fw.timer.Stop()
	}
	fw.mutex.Unlock()
	return fw.watcher.Close()
}

func (fw *FileWatcher) handleEvent(event fsnotify.Event) {
	abs, err := filepath.Abs(event.Name)
	if err != nil || abs != fw.target {
		return
	}

	var eventType EventType
	switch {
	case event.Op&fsnotify.Create != 0:
		eventType = EventTypeCreated
	case event.Op&fsnotify.Write != 0:
		eventType = EventTypeModified
	case event.Op&fsnotify.Remove != 0:
		eventType = EventTypeDeleted
	case event.Op&fsnotify.Rename != 0:
		eventType = EventTypeRenamed
	default:
		return
	}

	fw.mutex.Lock()
	defer fw.mutex.Unlock()

	fw.pending = append(fw.pending, ChangeEvent{
		Type:    eventType,
		Path:    abs,
		ModTime: time.Now(),
	})

	if fw.timer != nil {
		fw.timer.Stop()
	}
	fw.timer = time.AfterFunc(fw.delay, fw.flush)
}

func (fw *FileWatcher) flush() {
	fw.mutex.Lock()
	events := fw.pending
	fw.pending = nil
	handlers := make([]ChangeHandler, len(fw.handlers))
	copy(handlers, fw.handlers)
	fw.mutex.Unlock()

	if len(events) == 0 {
		return
	}

	for _, handler := range handlers {
		// Handler errors are the handler's responsibility to report;
		// the watch loop keeps running.
		_ = handler(events)
	}
}
