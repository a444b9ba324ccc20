// Copyright 2010 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package entity loads and looks up the named character reference
// table used by the HTML5 tokenizer's character-reference states
// (https://html.spec.whatwg.org/multipage/named-characters.html).
package entity

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

//go:embed data.json
var packaged embed.FS

// Entry is the decoded expansion of one named character reference.
type Entry struct {
	// Codepoints are the Unicode scalar values the reference expands
	// to (one, or two for references like &NotEqualTilde;).
	Codepoints []rune `json:"codepoints"`
	// Characters is Codepoints rendered as a Go string, kept alongside
	// Codepoints so callers needing either shape don't have to
	// re-encode.
	Characters string `json:"characters"`
}

// LoadError is returned by Load when the packaged entity data is
// missing or malformed. Tokenizer construction does not load the table
// and never returns it: a tokenizer that finds the table unavailable
// reports an entity-table-unavailable parse error and leaves named
// character references unreplaced.
type LoadError struct {
	Err error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("entity: failed to load named character reference table: %s", e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Table is an immutable, read-only-after-construction named-entity
// lookup table. A Table is safe for concurrent use by many tokenizers.
type Table struct {
	entries map[string]Entry
	maxLen  int
}

// Lookup returns the entry for name (the text between "&" and the
// terminating ";" or the end of a legacy no-semicolon reference), and
// whether it exists.
func (t *Table) Lookup(name string) (Entry, bool) {
	e, ok := t.entries[name]
	return e, ok
}

// LongestMatch finds the longest prefix of s that names a known
// entity. It returns the matched length (0 if no prefix matches) and
// the entry.
func (t *Table) LongestMatch(s string) (n int, e Entry, ok bool) {
	hi := len(s)
	if hi > t.maxLen {
		hi = t.maxLen
	}
	for n := hi; n > 0; n-- {
		if e, ok := t.entries[s[:n]]; ok {
			return n, e, true
		}
	}
	return 0, Entry{}, false
}

// load parses the packaged JSON file into a Table.
func load() (*Table, error) {
	raw, err := packaged.ReadFile("data.json")
	if err != nil {
		return nil, err
	}
	var decoded map[string]Entry
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, err
	}
	t := &Table{
		entries: make(map[string]Entry, len(decoded)),
	}
	for name, e := range decoded {
		name = strings.TrimPrefix(name, "&")
		if e.Characters == "" && len(e.Codepoints) > 0 {
			e.Characters = string(e.Codepoints)
		}
		t.entries[name] = e
		if len(name) > t.maxLen {
			t.maxLen = len(name)
		}
	}
	return t, nil
}

var loadOnce = sync.OnceValues(func() (*Table, error) {
	t, err := load()
	if err != nil {
		return nil, &LoadError{Err: err}
	}
	return t, nil
})

// Load returns the process-wide named-entity table, parsing the
// packaged data file on first use and memoizing the result. Every call
// after the first returns the same Table and the same error, if any.
func Load() (*Table, error) {
	return loadOnce()
}
