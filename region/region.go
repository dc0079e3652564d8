// Copyright (c) 2025 complex (complex@ft.hn)
// See LICENSE for licensing information

// Package region maps 6-digit administrative division codes to their
// province, city and district names.
//
// The packaged table covers every province-level division (34 codes), the
// prefecture-level capitals and a sample of counties. Load or LoadFile
// accept a complete national table in the same JSON shape.
//
// A Table is read-only after it is loaded and may be shared between
// goroutines without locking.
package region

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
)

// CodeLen is the length of an administrative division code
const CodeLen = 6

// Placeholder marks an absent division level in legacy data files.
// It is converted to an empty string when a table is loaded.
const Placeholder = "无"

// ErrInvalidCode is returned when a data file contains a malformed key
var ErrInvalidCode = errors.New("region: invalid division code")

//go:embed data.json
var embedded []byte

// Entry is one division record. Empty fields mean the level does not exist.
type Entry struct {
	Address  string `json:"address"`
	Province string `json:"province"`
	City     string `json:"city"`
	District string `json:"area"`
}

// Parts returns the non-empty province, city and district names in order
func (e Entry) Parts() []string {
	parts := make([]string, 0, 3)
	for _, p := range []string{e.Province, e.City, e.District} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

// Table is an immutable code → Entry mapping
type Table struct {
	entries map[string]Entry
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the table built from the packaged data. It is decoded on
// first use and shared afterwards.
func Default() *Table {
	defaultOnce.Do(func() {
		t, err := Load(bytes.NewReader(embedded))
		if err != nil {
			// the embedded resource is part of the build
			panic(err)
		}
		defaultTable = t
	})
	return defaultTable
}

// Load decodes a JSON object keyed by division code
func Load(r io.Reader) (*Table, error) {
	var raw map[string]Entry
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("region: decode: %w", err)
	}

	entries := make(map[string]Entry, len(raw))
	for code, e := range raw {
		if !validCode(code) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidCode, code)
		}
		entries[code] = Entry{
			Address:  e.Address,
			Province: clean(e.Province),
			City:     clean(e.City),
			District: clean(e.District),
		}
	}
	return &Table{entries: entries}, nil
}

// LoadFile reads a table from a JSON file
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("region: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Lookup returns the entry for a 6-digit code
func (t *Table) Lookup(code string) (Entry, bool) {
	e, ok := t.entries[code]
	return e, ok
}

// Len returns the number of codes in the table
func (t *Table) Len() int {
	return len(t.entries)
}

func clean(s string) string {
	if s == Placeholder {
		return ""
	}
	return s
}

func validCode(s string) bool {
	if len(s) != CodeLen {
		return false
	}
	for i := 0; i < CodeLen; i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
