package plan

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher monitors a plan file for edits using fsnotify. Events are
// debounced so editors that save in bursts trigger a single reload.
type Watcher struct {
	Path    string
	Changes <-chan string // Emits the plan path after each settled change

	changes chan string
	done    chan struct{}
	watcher *fsnotify.Watcher
}

// NewWatcher creates a watcher for the given plan file.
func NewWatcher(path string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	ch := make(chan string, 16)
	return &Watcher{
		Path:    path,
		Changes: ch,
		changes: ch,
		done:    make(chan struct{}),
		watcher: fw,
	}, nil
}

// Start begins watching. The watch is placed on the plan's directory so
// atomic saves (write temp + rename) keep being observed.
func (w *Watcher) Start() error {
	if err := w.watcher.Add(filepath.Dir(w.Path)); err != nil {
		return err
	}

	go w.loop()
	return nil
}

// Stop closes the watcher and channels.
func (w *Watcher) Stop() {
	w.watcher.Close()
	<-w.done // Wait for loop to exit
	close(w.changes)
}

func (w *Watcher) loop() {
	defer close(w.done)

	const debounce = 100 * time.Millisecond
	var pending time.Time
	ticker := time.NewTicker(debounce)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				// Flush pending on close.
				if !pending.IsZero() {
					w.changes <- w.Path
				}
				return
			}

			if filepath.Clean(event.Name) != filepath.Clean(w.Path) {
				continue
			}

			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				pending = time.Now()
			}

		case _, ok := <-ticker.C:
			if !ok {
				return
			}
			if !pending.IsZero() && time.Since(pending) >= debounce {
				w.changes <- w.Path
				pending = time.Time{}
			}

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Ignore watch errors; they're non-fatal.
		}
	}
}
