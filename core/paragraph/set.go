// Package paragraph models a book's raw paragraph text as an ordered set
// keyed by numeric strings ("0", "1", ...).
//
// Keys are validated on insertion and iteration is always in ascending
// numeric key order, never insertion or map order.
package paragraph

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
)

var (
	// ErrInvalidKey is returned for keys that are not non-negative base-10 integers.
	ErrInvalidKey = errors.New("paragraph key is not a non-negative integer")
	// ErrDuplicateKey is returned when two keys name the same index ("1" and "01").
	ErrDuplicateKey = errors.New("duplicate paragraph index")
)

// Entry is a single paragraph and the key it was stored under.
type Entry struct {
	Key   string
	Index uint64
	Text  string
}

// Set is an ordered mapping from numeric-string key to raw paragraph text.
// The zero value is an empty set ready to use.
type Set struct {
	entries map[uint64]Entry
}

// FromMap builds a Set from a plain map, validating every key.
func FromMap(m map[string]string) (Set, error) {
	var s Set
	for k, v := range m {
		if err := s.Add(k, v); err != nil {
			return Set{}, err
		}
	}
	return s, nil
}

// FromSlice builds a Set whose keys are the slice positions.
func FromSlice(texts []string) Set {
	s := Set{entries: make(map[uint64]Entry, len(texts))}
	for i, t := range texts {
		idx := uint64(i)
		s.entries[idx] = Entry{Key: strconv.FormatUint(idx, 10), Index: idx, Text: t}
	}
	return s
}

// Parse decodes a JSON object of the form {"0": "text", "1": "text"}.
// A null value is kept as an empty paragraph. Keys are read in document
// order, so a repeated key is reported as ErrDuplicateKey like "1" and "01".
func Parse(data []byte) (Set, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return Set{}, fmt.Errorf("decoding paragraph set: %w", err)
	}
	if tok == nil {
		return Set{}, nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return Set{}, fmt.Errorf("decoding paragraph set: want an object, got %v", tok)
	}

	var s Set
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return Set{}, fmt.Errorf("decoding paragraph set: %w", err)
		}
		key, _ := tok.(string)

		var v *string
		if err := dec.Decode(&v); err != nil {
			return Set{}, fmt.Errorf("decoding paragraph %q: %w", key, err)
		}
		text := ""
		if v != nil {
			text = *v
		}
		if err := s.Add(key, text); err != nil {
			return Set{}, err
		}
	}
	if _, err := dec.Token(); err != nil {
		return Set{}, fmt.Errorf("decoding paragraph set: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return Set{}, errors.New("decoding paragraph set: trailing data after object")
	}
	return s, nil
}

// Add stores text under key.
func (s *Set) Add(key, text string) error {
	idx, err := strconv.ParseUint(key, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	if s.entries == nil {
		s.entries = make(map[uint64]Entry)
	}
	if prev, ok := s.entries[idx]; ok {
		return fmt.Errorf("%w: %q and %q", ErrDuplicateKey, prev.Key, key)
	}
	s.entries[idx] = Entry{Key: key, Index: idx, Text: text}
	return nil
}

// Len returns the number of paragraphs in the set.
func (s Set) Len() int { return len(s.entries) }

// Entries returns all entries in ascending numeric key order.
func (s Set) Entries() []Entry {
	out := make([]Entry, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, e)
	}
	slices.SortFunc(out, func(a, b Entry) int {
		switch {
		case a.Index < b.Index:
			return -1
		case a.Index > b.Index:
			return 1
		}
		return 0
	})
	return out
}

// Texts returns the raw paragraph texts in ascending numeric key order.
func (s Set) Texts() []string {
	entries := s.Entries()
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Text
	}
	return out
}
