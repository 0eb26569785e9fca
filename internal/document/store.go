// Copyright (c) Svelte Language Tools contributors.
// SPDX-License-Identifier: MIT

package document

import (
	"io"
	"log"
	"sync"
	"time"

	"github.com/hashicorp/go-multierror"

	"github.com/svelte-tools/svelte-ls/internal/source"
	"github.com/svelte-tools/svelte-ls/internal/vfs"
)

// Store tracks open documents and writes every state change through to
// the host, so code reading files via the host always observes the
// open-buffer content.
type Store struct {
	host vfs.Host

	docs   map[string]*Document
	docsMu *sync.RWMutex

	logger *log.Logger
}

func NewStore(host vfs.Host) *Store {
	return &Store{
		host:   host,
		docs:   make(map[string]*Document, 0),
		docsMu: &sync.RWMutex{},
		logger: log.New(io.Discard, "", 0),
	}
}

func (s *Store) SetLogger(logger *log.Logger) {
	s.logger = logger
}

// OpenDocument starts tracking path with the given content at version 1
// and writes the content to the host.
func (s *Store) OpenDocument(path, languageID, text string) error {
	err := s.host.WriteFile(path, text)
	if err != nil {
		return err
	}

	s.docsMu.Lock()
	defer s.docsMu.Unlock()

	s.docs[path] = &Document{
		Path:       path,
		LanguageID: languageID,
		Version:    1,
		ModTime:    time.Now(),
		Text:       []byte(text),
		Lines:      source.MakeSourceLines(path, []byte(text)),
	}
	s.logger.Printf("opened %s (%s, %d bytes)", path, languageID, len(text))

	return nil
}

// ChangeDocument applies changes to an open document, bumps it to
// version and writes the result through to the host.
func (s *Store) ChangeDocument(path string, version int, changes Changes) error {
	s.docsMu.Lock()
	defer s.docsMu.Unlock()

	doc, ok := s.docs[path]
	if !ok {
		return &DocumentNotOpenErr{Path: path}
	}

	newText, err := ApplyChanges(doc.Text, changes)
	if err != nil {
		return err
	}

	err = s.host.WriteFile(path, string(newText))
	if err != nil {
		return err
	}

	doc.Text = newText
	doc.Lines = source.MakeSourceLines(path, newText)
	doc.Version = version
	doc.ModTime = time.Now()
	s.logger.Printf("changed %s to version %d", path, version)

	return nil
}

// CloseDocument stops tracking path. The host keeps the last written
// content; closing a buffer does not delete the file.
func (s *Store) CloseDocument(path string) error {
	s.docsMu.Lock()
	defer s.docsMu.Unlock()

	if _, ok := s.docs[path]; !ok {
		return &DocumentNotOpenErr{Path: path}
	}
	delete(s.docs, path)
	s.logger.Printf("closed %s", path)

	return nil
}

// CloseDocuments closes all named documents, accumulating an error per
// document which was not open.
func (s *Store) CloseDocuments(paths []string) error {
	var result *multierror.Error
	for _, path := range paths {
		if err := s.CloseDocument(path); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}

// GetDocument returns a copy of the tracked document, so callers can
// not mutate store state behind the lock's back.
func (s *Store) GetDocument(path string) (*Document, bool) {
	s.docsMu.RLock()
	defer s.docsMu.RUnlock()

	doc, ok := s.docs[path]
	if !ok {
		return nil, false
	}
	return doc.Copy(), true
}

// IsDocumentOpen reports whether path is currently tracked.
func (s *Store) IsDocumentOpen(path string) bool {
	s.docsMu.RLock()
	defer s.docsMu.RUnlock()
	_, ok := s.docs[path]
	return ok
}

// ListDocuments returns copies of all tracked documents.
func (s *Store) ListDocuments() []*Document {
	s.docsMu.RLock()
	defer s.docsMu.RUnlock()

	docs := make([]*Document, 0, len(s.docs))
	for _, doc := range s.docs {
		docs = append(docs, doc.Copy())
	}
	return docs
}
