package source

import (
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/penwyp/go-focus-monitor/internal/core/model"
	"github.com/penwyp/go-focus-monitor/internal/util"
)

// Watcher reports changes to event log files so callers can re-run their
// queries when new lifecycle data lands.
type Watcher struct {
	watcher *fsnotify.Watcher
	events  chan model.FileEvent
}

// NewWatcher watches the directory tree rooted at each path.
func NewWatcher(paths []string) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		watcher: watcher,
		events:  make(chan model.FileEvent, 100),
	}

	for _, path := range paths {
		if err := w.addPath(path); err != nil {
			watcher.Close()
			return nil, err
		}
	}

	go w.processEvents()

	return w, nil
}

func (w *Watcher) addPath(path string) error {
	return filepath.Walk(path, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			return w.watcher.Add(p)
		}
		return nil
	})
}

func (w *Watcher) processEvents() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			// Only event log files are interesting.
			if filepath.Ext(event.Name) == ".jsonl" {
				w.events <- model.FileEvent{
					Path:      event.Name,
					Operation: event.Op.String(),
				}
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Log error but continue running.
			util.LogError("Event log monitoring error: " + err.Error())
		}
	}
}

// Events returns the change stream.
func (w *Watcher) Events() <-chan model.FileEvent {
	return w.events
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
