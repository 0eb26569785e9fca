// Copyright (c) Svelte Language Tools contributors.
// SPDX-License-Identifier: MIT

package vfs

import (
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/hashicorp/go-multierror"
	"github.com/hashicorp/go-uuid"
	"github.com/spf13/afero"
)

// OSHost implements Host against the real filesystem, passing the
// underlying system's capabilities through unmodified. WatchFile is
// backed by fsnotify, so unlike VirtualHost the notifications arrive
// on the watcher goroutine whenever the OS reports them.
type OSHost struct {
	fs afero.Fs
	fw *fsnotify.Watcher

	mu       sync.Mutex
	watchers map[string][]*watchEntry

	logger *log.Logger

	stopOnce sync.Once
	done     chan struct{}
}

var _ Host = (*OSHost)(nil)

func NewOSHost() (*OSHost, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	h := &OSHost{
		fs:       afero.NewOsFs(),
		fw:       fw,
		watchers: make(map[string][]*watchEntry, 0),
		logger:   defaultLogger,
		done:     make(chan struct{}),
	}
	go h.run()
	return h, nil
}

func (h *OSHost) SetLogger(logger *log.Logger) {
	h.logger = logger
}

func (h *OSHost) WriteFile(p, content string) error {
	err := h.fs.MkdirAll(filepath.Dir(p), 0o755)
	if err != nil {
		return err
	}
	return afero.WriteFile(h.fs, p, []byte(content), 0o644)
}

func (h *OSHost) ReadFile(p string) (string, bool) {
	b, err := afero.ReadFile(h.fs, p)
	if err != nil {
		return "", false
	}
	return string(b), true
}

func (h *OSHost) FileExists(p string) bool {
	fi, err := h.fs.Stat(p)
	return err == nil && !fi.IsDir()
}

func (h *OSHost) DirectoryExists(p string) bool {
	fi, err := h.fs.Stat(p)
	return err == nil && fi.IsDir()
}

func (h *OSHost) DeleteFile(p string) error {
	err := h.fs.Remove(p)
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}

func (h *OSHost) WatchFile(p string, cb WatchCallback) Watch {
	h.mu.Lock()
	defer h.mu.Unlock()

	id, err := uuid.GenerateUUID()
	if err != nil {
		id = p
	}
	h.watchers[p] = append(h.watchers[p], &watchEntry{id: id, cb: cb})

	err = h.fw.Add(filepath.Dir(p))
	if err != nil {
		h.logger.Printf("failed to watch %s: %s", p, err)
	}

	return &osWatch{host: h, path: p, id: id}
}

func (h *OSHost) ModTime(p string) (time.Time, bool) {
	fi, err := h.fs.Stat(p)
	if err != nil {
		return time.Time{}, false
	}
	return fi.ModTime(), true
}

// Stop tears the watcher down. Safe to call more than once.
func (h *OSHost) Stop() error {
	var result *multierror.Error
	h.stopOnce.Do(func() {
		close(h.done)
		if err := h.fw.Close(); err != nil {
			result = multierror.Append(result, err)
		}
	})
	return result.ErrorOrNil()
}

func (h *OSHost) run() {
	for {
		select {
		case <-h.done:
			return
		case event, ok := <-h.fw.Events:
			if !ok {
				return
			}
			h.dispatch(event)
		case err, ok := <-h.fw.Errors:
			if !ok {
				return
			}
			h.logger.Printf("watch error: %s", err)
		}
	}
}

func (h *OSHost) dispatch(event fsnotify.Event) {
	var kind EventKind
	switch {
	case event.Has(fsnotify.Create):
		kind = EventCreated
	case event.Has(fsnotify.Write):
		kind = EventChanged
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		kind = EventDeleted
	default:
		return
	}

	h.mu.Lock()
	var cbs []WatchCallback
	for _, entry := range h.watchers[event.Name] {
		cbs = append(cbs, entry.cb)
	}
	h.mu.Unlock()

	if len(cbs) == 0 {
		return
	}
	h.logger.Printf("dispatching %s for %s to %d watcher(s)",
		kind, event.Name, len(cbs))
	for _, cb := range cbs {
		cb(Event{Path: event.Name, Kind: kind})
	}
}

type osWatch struct {
	host *OSHost
	path string
	id   string
}

func (w *osWatch) Dispose() {
	h := w.host
	h.mu.Lock()
	defer h.mu.Unlock()

	entries := h.watchers[w.path]
	filtered := entries[:0]
	for _, entry := range entries {
		if entry.id != w.id {
			filtered = append(filtered, entry)
		}
	}
	h.watchers[w.path] = filtered
}
