// Package normalize cleans raw paragraph text into single-line strings
// whose rune count is their logical cost on a page.
package normalize

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// DefaultNullMarker matches paragraphs that carry only a stray escaped
// newline ("\n", "\\n", or a bare "n") surrounded by whitespace. Some source
// material stores empty paragraphs that way.
const DefaultNullMarker = `^\s*\\*n\s*$`

// Predicate reports whether a raw paragraph should be discarded outright.
type Predicate func(raw string) bool

var defaultNullMarker = regexp.MustCompile(DefaultNullMarker)

// IsNullMarker is the default discard predicate.
func IsNullMarker(raw string) bool {
	return defaultNullMarker.MatchString(raw)
}

// NullMarkerPattern compiles a discard predicate from a regular expression.
func NullMarkerPattern(pattern string) (Predicate, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("compiling null marker %q: %w", pattern, err)
	}
	return re.MatchString, nil
}

// TextNormalizer collapses whitespace in paragraph text.
type TextNormalizer struct {
	// NFC composes decomposed sequences (e.g. conjoining Hangul jamo)
	// before counting, so one syllable costs one logical unit.
	NFC bool
	// Discard overrides IsNullMarker when set.
	Discard Predicate
}

// New creates a TextNormalizer with the default null-marker predicate.
func New() *TextNormalizer {
	return &TextNormalizer{}
}

// Normalize returns raw with every whitespace run (newlines included)
// collapsed to one space and both ends trimmed. Empty, whitespace-only and
// null-marker paragraphs normalize to "". The discard predicate sees the
// collapsed text, so Unicode spaces around a marker do not hide it.
func (n *TextNormalizer) Normalize(raw string) string {
	if n.NFC {
		raw = norm.NFC.String(raw)
	}
	clean := strings.Join(strings.FieldsFunc(raw, isSpace), " ")
	if clean == "" || n.discard(clean) {
		return ""
	}
	return clean
}

func (n *TextNormalizer) discard(clean string) bool {
	if n.Discard != nil {
		return n.Discard(clean)
	}
	return IsNullMarker(clean)
}

// Normalize cleans raw with the default settings.
func Normalize(raw string) string {
	return New().Normalize(raw)
}

// isSpace extends unicode.IsSpace with the zero-width no-break space,
// which shows up as a stray BOM in scraped text.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}
