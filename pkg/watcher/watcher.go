// Package watcher delivers file-change notifications for the paths a
// module registers. It watches parent directories (inotify on a single
// sysfs attribute is unreliable) and filters events down to the
// registered files.
package watcher

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Event reports that a registered path was written, created, or chmodded.
type Event struct {
	Path string
}

type Watcher struct {
	fsw    *fsnotify.Watcher
	paths  map[string]struct{}
	dirs   map[string]struct{}
	events chan Event
}

func New() (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, pkgerrors.Wrap(err, "create fsnotify watcher")
	}
	return &Watcher{
		fsw:    fsw,
		paths:  make(map[string]struct{}),
		dirs:   make(map[string]struct{}),
		events: make(chan Event, 64),
	}, nil
}

// Register adds a file to the watch set. Registering two files in the
// same directory reuses the directory watch.
func (w *Watcher) Register(path string) error {
	dir := filepath.Dir(path)
	if _, ok := w.dirs[dir]; !ok {
		if err := w.fsw.Add(dir); err != nil {
			return pkgerrors.Wrapf(err, "watch directory %s", dir)
		}
		w.dirs[dir] = struct{}{}
	}
	w.paths[path] = struct{}{}
	logrus.Debugf("watching %s", path)
	return nil
}

// Events is the channel Run delivers on. It is closed when Run returns.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Run forwards fsnotify events for registered paths until the context is
// cancelled or the underlying watcher dies. Watcher errors are logged and
// watching continues.
func (w *Watcher) Run(ctx context.Context) {
	defer close(w.events)

	for {
		select {
		case <-ctx.Done():
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if _, registered := w.paths[ev.Name]; !registered {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Chmod) {
				continue
			}
			select {
			case w.events <- Event{Path: ev.Name}:
			case <-ctx.Done():
				return
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			logrus.Errorf("watcher error: %v", err)
		}
	}
}

func (w *Watcher) Close() error {
	return w.fsw.Close()
}
