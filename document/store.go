// Package document holds the text of open editor buffers. A buffer is
// replaced wholesale on every change; the store re-parses synchronously
// and caches the result alongside the text.
package document

import (
	"strings"
	"sync"

	"github.com/dhamidi/saffron/parser"
)

type Document struct {
	URI     string
	Text    string
	Version int
	Module  *parser.Module
	Errs    []*parser.ParseError
}

type Store struct {
	mu   sync.RWMutex
	docs map[string]*Document
}

func NewStore() *Store {
	return &Store{
		docs: make(map[string]*Document),
	}
}

// Open registers a document with its full initial text, replacing any
// prior buffer for the same URI.
func (s *Store) Open(uri, text string) *Document {
	return s.Replace(uri, text)
}

// Replace swaps in the full replacement text and re-parses from scratch.
func (s *Store) Replace(uri, text string) *Document {
	s.mu.Lock()
	defer s.mu.Unlock()

	version := 1
	if prev, ok := s.docs[uri]; ok {
		version = prev.Version + 1
	}

	module, errs := parser.ParseDocument(text, uri)
	doc := &Document{
		URI:     uri,
		Text:    text,
		Version: version,
		Module:  module,
		Errs:    errs,
	}
	s.docs[uri] = doc
	return doc
}

func (s *Store) Close(uri string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, uri)
}

// Get returns the current snapshot for the URI, or nil. Callers treat a
// missing document as empty rather than failing.
func (s *Store) Get(uri string) *Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.docs[uri]
}

// Line returns the 0-based line of the document's current text. Missing
// documents and out-of-range lines degrade to the empty string.
func (s *Store) Line(uri string, line int) string {
	doc := s.Get(uri)
	if doc == nil {
		return ""
	}
	lines := strings.Split(doc.Text, "\n")
	if line < 0 || line >= len(lines) {
		return ""
	}
	return lines[line]
}
