// Copyright (c) Svelte Language Tools contributors.
// SPDX-License-Identifier: MIT

// Package vfs provides the host surface the language service driver
// reads files through. The virtual implementation keeps everything in
// memory so tests can simulate edits and observe watcher behaviour
// without touching disk; the OS implementation passes through to the
// real filesystem.
package vfs

import (
	"log"
	"time"
)

// EventKind classifies a file change event.
type EventKind int

const (
	EventCreated EventKind = iota
	EventChanged
	EventDeleted
)

func (k EventKind) String() string {
	switch k {
	case EventCreated:
		return "created"
	case EventChanged:
		return "changed"
	case EventDeleted:
		return "deleted"
	}
	return "unknown"
}

// Event describes a change to a single watched file. Path is in the
// host's canonical form.
type Event struct {
	Path string
	Kind EventKind
}

// WatchCallback receives change events for one watched path.
type WatchCallback func(Event)

// Watch is the registration handle returned by WatchFile. Disposing it
// removes the callback and suppresses any notification scheduled for
// the path which has not been delivered yet. Dispose is idempotent.
type Watch interface {
	Dispose()
}

// Host is the filesystem contract the language service driver consumes.
// Negative results are reported via false/zero returns, never errors;
// error returns exist for the sake of real-filesystem implementations.
type Host interface {
	WriteFile(path, content string) error
	ReadFile(path string) (string, bool)
	FileExists(path string) bool
	DirectoryExists(path string) bool
	DeleteFile(path string) error
	WatchFile(path string, cb WatchCallback) Watch
	ModTime(path string) (time.Time, bool)
	SetLogger(logger *log.Logger)
}
