// Package sentence splits a normalized paragraph into sentences for
// mixed Korean/Latin text.
//
// A sentence ends at a run of terminator characters (". ! ? 。 ！ ？ …")
// plus any closing quotes or brackets that immediately follow the run.
// Both character classes are tables so new locales can extend them.
package sentence

import (
	"strings"
	"unicode"
)

// DefaultTerminators are the characters that can end a sentence.
const DefaultTerminators = ".!?。！？…"

// DefaultClosers are quotes and brackets that stay with the sentence they close.
const DefaultClosers = "\"'”’」』）)]］》〉】〕"

// Splitter splits paragraphs at terminator runs.
type Splitter struct {
	terminators map[rune]struct{}
	closers     map[rune]struct{}
}

// New creates a Splitter from terminator and closer tables. Duplicate
// characters are ignored. Empty tables fall back to the defaults.
func New(terminators, closers string) *Splitter {
	if terminators == "" {
		terminators = DefaultTerminators
	}
	if closers == "" {
		closers = DefaultClosers
	}
	return &Splitter{
		terminators: runeSet(terminators),
		closers:     runeSet(closers),
	}
}

// Default returns a Splitter with the default tables.
func Default() *Splitter {
	return New(DefaultTerminators, DefaultClosers)
}

func runeSet(chars string) map[rune]struct{} {
	set := make(map[rune]struct{}, len(chars))
	for _, r := range chars {
		if unicode.IsSpace(r) {
			continue
		}
		set[r] = struct{}{}
	}
	return set
}

// IsTerminator reports whether r ends a sentence.
func (s *Splitter) IsTerminator(r rune) bool {
	_, ok := s.terminators[r]
	return ok
}

// IsCloser reports whether r attaches to the sentence it follows.
func (s *Splitter) IsCloser(r rune) bool {
	_, ok := s.closers[r]
	return ok
}

// Split returns the trimmed sentences of paragraph in scan order.
// A paragraph without any terminator comes back as a single sentence;
// whitespace between sentences is dropped.
func (s *Splitter) Split(paragraph string) []string {
	runes := []rune(paragraph)
	var (
		sentences []string
		buf       strings.Builder
	)
	push := func() {
		if t := strings.TrimSpace(buf.String()); t != "" {
			sentences = append(sentences, t)
		}
		buf.Reset()
	}

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		buf.WriteRune(r)
		if !s.IsTerminator(r) {
			continue
		}
		// Swallow the rest of the terminator run ("......", "?!"),
		// then any closing quotes/brackets.
		for i+1 < len(runes) && s.IsTerminator(runes[i+1]) {
			i++
			buf.WriteRune(runes[i])
		}
		for i+1 < len(runes) && s.IsCloser(runes[i+1]) {
			i++
			buf.WriteRune(runes[i])
		}
		push()
	}
	push()
	return sentences
}

// Split splits paragraph with the default tables.
func Split(paragraph string) []string {
	return Default().Split(paragraph)
}
