package extract

import (
	"bytes"
	"path"
	"strings"

	"github.com/1Seob/Flik-v2-sub000/core/paragraph"
)

// Source formats understood by ForFormat.
const (
	FormatAuto = "auto"
	FormatJSON = "json"
	FormatHTML = "html"
)

// JSONExtractor reads a paragraph set stored as {"0": "...", "1": "..."}.
type JSONExtractor struct{}

// Extract decodes doc as a paragraph set.
func (JSONExtractor) Extract(doc []byte) (paragraph.Set, error) {
	return paragraph.Parse(doc)
}

// Detect guesses the format of a source from its name and leading bytes.
func Detect(src string, doc []byte) string {
	name := src
	if i := strings.IndexAny(name, "?#"); i >= 0 {
		name = name[:i]
	}
	switch strings.ToLower(path.Ext(name)) {
	case ".html", ".htm", ".xhtml":
		return FormatHTML
	case ".json":
		return FormatJSON
	}
	trimmed := bytes.TrimLeft(doc, " \t\r\n\xef\xbb\xbf")
	if bytes.HasPrefix(trimmed, []byte("<")) {
		return FormatHTML
	}
	return FormatJSON
}
