// Copyright (c) Svelte Language Tools contributors.
// SPDX-License-Identifier: MIT

package document

import (
	"path/filepath"
	"time"

	"github.com/svelte-tools/svelte-ls/internal/source"
)

// Document is an open editor buffer tracked by the Store. Text is the
// authoritative content; the backing host is kept in sync on every
// change so the language service reads what the editor sees.
type Document struct {
	Path       string
	LanguageID string
	Version    int
	ModTime    time.Time

	Text []byte

	// Lines enables byte offset computation for position-based
	// operations; LSP positions carry just line+column.
	Lines source.Lines
}

func (d *Document) Dir() string {
	return filepath.Dir(d.Path)
}

func (d *Document) Filename() string {
	return filepath.Base(d.Path)
}

func (d *Document) Copy() *Document {
	return &Document{
		Path:       d.Path,
		LanguageID: d.LanguageID,
		Version:    d.Version,
		ModTime:    d.ModTime,
		Text:       d.Text,
		Lines:      d.Lines.Copy(),
	}
}
