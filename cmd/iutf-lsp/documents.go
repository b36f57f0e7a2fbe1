package main

import (
	"sync"

	"github.com/iutf-format/iutf/ir"
	"github.com/iutf-format/iutf/parse"
	"github.com/iutf-format/iutf/token"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

func newDocumentStore() *documentStore {
	return &documentStore{docs: make(map[string]*document)}
}

// document is an immutable snapshot of one open file. Replaced trees are
// left to the collector since a request may still hold them.
type document struct {
	uri       string
	content   string
	version   int32
	node      *ir.Node
	err       error
	positions map[*ir.Node]*token.Pos
	posDoc    *token.PosDoc
}

func newDocument(uri, content string, version int32) *document {
	positions := make(map[*ir.Node]*token.Pos)
	node, err := parse.ParseString(content, parse.ParsePositions(positions))
	return &document{
		uri:       uri,
		content:   content,
		version:   version,
		node:      node,
		err:       err,
		positions: positions,
		posDoc:    token.NewPosDoc([]byte(content)),
	}
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri string, content string, version int32) *document {
	doc := newDocument(uri, content, version)
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.docs[uri] = doc
	return doc
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}
