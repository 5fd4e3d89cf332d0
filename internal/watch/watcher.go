// Package watch observes the listed files for on-disk changes so the
// front-ends can refresh a stale preview or flag a missing entry. It is
// purely advisory: the combiner always reads whatever is on disk at combine
// time.
package watch

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"combind/internal/log"

	"github.com/fsnotify/fsnotify"
)

// Modification represents a change to a listed file
type Modification struct {
	Path      string
	Timestamp time.Time
	Op        fsnotify.Op
}

// Watcher monitors the listed files using fsnotify. Because fsnotify watches
// directories, the watcher registers each file's parent directory once and
// filters events down to the tracked paths.
type Watcher struct {
	// Tracked file paths
	files map[string]bool

	// Parent directories registered with fsnotify
	directories map[string]bool

	// Channel delivering modifications to the front-end
	modChan chan Modification

	// Channel to signal stop
	stopChan chan struct{}

	fsWatcher *fsnotify.Watcher

	// Protects files, directories, running and stopped
	mutex sync.RWMutex

	running bool
	stopped bool
}

// New creates a new file watcher
func New() (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	return &Watcher{
		files:       make(map[string]bool),
		directories: make(map[string]bool),
		modChan:     make(chan Modification, 10),
		stopChan:    make(chan struct{}),
		fsWatcher:   fsWatcher,
	}, nil
}

// Add starts tracking a file, registering its parent directory with fsnotify
// if it is not registered yet. The file itself does not have to exist; a
// later create event will still be delivered.
func (w *Watcher) Add(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve path %s: %w", path, err)
	}

	w.mutex.Lock()
	defer w.mutex.Unlock()

	w.files[abs] = true

	dir := filepath.Dir(abs)
	if w.directories[dir] {
		return nil
	}
	if err := w.fsWatcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch directory %s: %w", dir, err)
	}
	w.directories[dir] = true
	log.WithField("directory", dir).Debug("Watching directory")
	return nil
}

// Events returns the channel that delivers modifications to tracked files
func (w *Watcher) Events() <-chan Modification {
	return w.modChan
}

// Start begins the event processing loop
func (w *Watcher) Start() error {
	w.mutex.Lock()
	if w.running {
		w.mutex.Unlock()
		return fmt.Errorf("watcher already running")
	}
	// A stopped watcher released its fsnotify handle and closed its event
	// channel; it cannot go around again.
	if w.stopped {
		w.mutex.Unlock()
		return fmt.Errorf("watcher already stopped")
	}
	w.running = true
	w.stopChan = make(chan struct{})
	w.mutex.Unlock()

	go func() {
		// The loop owns modChan: closing it here, after the last send, is
		// what makes Stop safe to call while events are still in flight.
		defer close(w.modChan)
		for {
			select {
			case event, ok := <-w.fsWatcher.Events:
				if !ok {
					return // Channel closed
				}

				if !w.tracked(event.Name) {
					continue
				}
				if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) &&
					!event.Op.Has(fsnotify.Remove) && !event.Op.Has(fsnotify.Rename) {
					continue
				}

				mod := Modification{
					Path:      event.Name,
					Timestamp: time.Now(),
					Op:        event.Op,
				}

				// Send non-blockingly so a slow front-end cannot wedge the loop
				select {
				case w.modChan <- mod:
				default:
					log.WithField("file", event.Name).Warn("Event channel is full, dropped event")
				}

			case err, ok := <-w.fsWatcher.Errors:
				if !ok {
					return // Channel closed
				}
				log.Errorf("fsnotify watcher error: %v", err)

			case <-w.stopChan:
				return
			}
		}
	}()

	log.Debugf("Watcher started")
	return nil
}

// Stop signals the event processing loop to exit and releases the fsnotify
// watcher. The event channel is closed by the loop itself once it returns.
func (w *Watcher) Stop() {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if !w.running {
		return // Already stopped
	}

	close(w.stopChan)

	if err := w.fsWatcher.Close(); err != nil {
		log.Errorf("Error closing fsnotify watcher: %v", err)
	}

	w.running = false
	w.stopped = true
}

// IsRunning returns whether the watcher is currently active
func (w *Watcher) IsRunning() bool {
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	return w.running
}

// Files returns the tracked file paths
func (w *Watcher) Files() []string {
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	out := make([]string, 0, len(w.files))
	for f := range w.files {
		out = append(out, f)
	}
	return out
}

func (w *Watcher) tracked(path string) bool {
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	return w.files[abs]
}
