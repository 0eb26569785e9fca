// Copyright (c) Svelte Language Tools contributors.
// SPDX-License-Identifier: MIT

package vfs

import (
	"io"
	"log"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/go-uuid"
	"github.com/spf13/afero"
)

// VirtualHost is an in-memory Host. File contents live in an afero
// memory filesystem keyed by canonical path; modification times, the
// watcher registry and the pending event queue are host-owned state so
// that multiple independent hosts can run in parallel test cases.
//
// Presence in the file table is the sole source of truth for existence
// queries. Mod-time and watcher entries are never pruned on delete;
// tests rely on "it existed once" history surviving a deletion.
type VirtualHost struct {
	mu sync.Mutex

	memFs    afero.Fs
	modTimes map[string]time.Time
	watchers map[string][]*watchEntry
	queue    eventQueue

	workDir       string
	caseSensitive bool

	logger *log.Logger
}

var _ Host = (*VirtualHost)(nil)

type watchEntry struct {
	id string
	cb WatchCallback
}

// NewVirtualHost returns an empty case-sensitive host rooted at "/".
func NewVirtualHost() *VirtualHost {
	return &VirtualHost{
		memFs:         afero.NewMemMapFs(),
		modTimes:      make(map[string]time.Time, 0),
		watchers:      make(map[string][]*watchEntry, 0),
		workDir:       "/",
		caseSensitive: true,
		logger:        defaultLogger,
	}
}

var defaultLogger = log.New(io.Discard, "", 0)

func (vh *VirtualHost) SetLogger(logger *log.Logger) {
	vh.logger = logger
}

// SetWorkingDirectory changes the directory relative paths resolve
// against. It does not re-key files already written.
func (vh *VirtualHost) SetWorkingDirectory(dir string) {
	vh.mu.Lock()
	defer vh.mu.Unlock()
	vh.workDir = filepath.ToSlash(dir)
}

// SetCaseSensitive toggles case folding of canonical paths. It does
// not re-key files already written.
func (vh *VirtualHost) SetCaseSensitive(sensitive bool) {
	vh.mu.Lock()
	defer vh.mu.Unlock()
	vh.caseSensitive = sensitive
}

// canonicalPath resolves p to the host's canonical form: forward
// slashes, absolute against the working directory, cleaned, and case
// folded on case-insensitive hosts.
func (vh *VirtualHost) canonicalPath(p string) string {
	p = filepath.ToSlash(p)
	if !path.IsAbs(p) {
		p = path.Join(vh.workDir, p)
	}
	p = path.Clean(p)
	if !vh.caseSensitive {
		p = strings.ToLower(p)
	}
	return p
}

// WriteFile stores content under the canonical path and schedules a
// Created or Changed notification depending on whether the path
// already existed. The notification is deferred until Flush; the write
// itself returns immediately.
func (vh *VirtualHost) WriteFile(p, content string) error {
	vh.mu.Lock()
	defer vh.mu.Unlock()

	canonical := vh.canonicalPath(p)
	existed := vh.fileExists(canonical)

	err := afero.WriteFile(vh.memFs, canonical, []byte(content), 0o644)
	if err != nil {
		return err
	}
	vh.modTimes[canonical] = time.Now()

	kind := EventCreated
	if existed {
		kind = EventChanged
	}
	vh.queue.push(Event{Path: canonical, Kind: kind})
	vh.logger.Printf("wrote %s (%s, %d bytes)", canonical, kind, len(content))

	return nil
}

// ReadFile returns the stored content, or false for paths never
// written (or deleted since).
func (vh *VirtualHost) ReadFile(p string) (string, bool) {
	vh.mu.Lock()
	defer vh.mu.Unlock()

	canonical := vh.canonicalPath(p)
	if !vh.fileExists(canonical) {
		return "", false
	}
	b, err := afero.ReadFile(vh.memFs, canonical)
	if err != nil {
		return "", false
	}
	return string(b), true
}

func (vh *VirtualHost) FileExists(p string) bool {
	vh.mu.Lock()
	defer vh.mu.Unlock()
	return vh.fileExists(vh.canonicalPath(p))
}

// fileExists consults the file table only; callers hold vh.mu.
func (vh *VirtualHost) fileExists(canonical string) bool {
	fi, err := vh.memFs.Stat(canonical)
	if err != nil {
		return false
	}
	return !fi.IsDir()
}

// DirectoryExists reports whether any stored file's canonical path has
// the canonicalized query as its prefix. Directories are implicit;
// none is ever tracked on its own.
func (vh *VirtualHost) DirectoryExists(p string) bool {
	vh.mu.Lock()
	defer vh.mu.Unlock()

	prefix := vh.canonicalPath(p)
	found := false
	afero.Walk(vh.memFs, "/", func(filePath string, info os.FileInfo, err error) error {
		if err != nil || info == nil || info.IsDir() {
			return nil
		}
		if strings.HasPrefix(filePath, prefix) {
			found = true
			return filepath.SkipDir
		}
		return nil
	})
	return found
}

// DeleteFile removes the file table entry and, if it was present,
// schedules a Deleted notification. Deleting a path never written is a
// no-op. Mod-time and watcher state stay behind.
func (vh *VirtualHost) DeleteFile(p string) error {
	vh.mu.Lock()
	defer vh.mu.Unlock()

	canonical := vh.canonicalPath(p)
	if !vh.fileExists(canonical) {
		return nil
	}
	err := vh.memFs.Remove(canonical)
	if err != nil {
		return err
	}
	vh.queue.push(Event{Path: canonical, Kind: EventDeleted})
	vh.logger.Printf("deleted %s", canonical)

	return nil
}

// WatchFile registers cb for events on the exact canonical path. The
// returned handle removes exactly this registration; callbacks are
// identified by a unique id, never by value, so the same function can
// be registered more than once.
func (vh *VirtualHost) WatchFile(p string, cb WatchCallback) Watch {
	vh.mu.Lock()
	defer vh.mu.Unlock()

	canonical := vh.canonicalPath(p)
	id, err := uuid.GenerateUUID()
	if err != nil {
		// rand never fails in practice; an unwatchable entry is still
		// identifiable by pointer equality of the handle
		id = canonical
	}
	vh.watchers[canonical] = append(vh.watchers[canonical], &watchEntry{
		id: id,
		cb: cb,
	})

	return &virtualWatch{host: vh, path: canonical, id: id}
}

// ModTime returns the time of the last write, surviving deletion.
func (vh *VirtualHost) ModTime(p string) (time.Time, bool) {
	vh.mu.Lock()
	defer vh.mu.Unlock()

	t, ok := vh.modTimes[vh.canonicalPath(p)]
	return t, ok
}

// PendingEvents reports how many notifications are scheduled but not
// yet delivered.
func (vh *VirtualHost) PendingEvents() int {
	vh.mu.Lock()
	defer vh.mu.Unlock()
	return vh.queue.pending()
}

// Flush delivers deferred notifications until the queue is empty,
// including events scheduled by the callbacks themselves. Watchers are
// resolved at delivery time, so a registration disposed after the
// triggering write no longer fires.
func (vh *VirtualHost) Flush() {
	for {
		vh.mu.Lock()
		ev, ok := vh.queue.pop()
		var cbs []WatchCallback
		if ok {
			for _, entry := range vh.watchers[ev.Path] {
				cbs = append(cbs, entry.cb)
			}
		}
		vh.mu.Unlock()

		if !ok {
			return
		}
		for _, cb := range cbs {
			cb(ev)
		}
	}
}

type virtualWatch struct {
	host *VirtualHost
	path string
	id   string
}

func (w *virtualWatch) Dispose() {
	vh := w.host
	vh.mu.Lock()
	defer vh.mu.Unlock()

	entries := vh.watchers[w.path]
	filtered := entries[:0]
	for _, entry := range entries {
		if entry.id != w.id {
			filtered = append(filtered, entry)
		}
	}
	vh.watchers[w.path] = filtered

	vh.queue.cancelPath(w.path)
}
