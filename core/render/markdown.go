// Package render provides output renderers for paginated books.
// This file implements the plain-text and Markdown renderers.
package render

import (
	"fmt"
	"strings"

	"github.com/1Seob/Flik-v2-sub000/core"
)

// pageBreak separates pages in plain-text output.
const pageBreak = "\n\f\n"

// TextRenderer writes page texts separated by form feeds.
type TextRenderer struct{}

// NewTextRenderer creates a TextRenderer.
func NewTextRenderer() *TextRenderer {
	return &TextRenderer{}
}

// Render joins the page texts.
func (r *TextRenderer) Render(pages []core.Page, meta core.BookMetadata, stats core.Stats) ([]byte, error) {
	texts := make([]string, len(pages))
	for i, pg := range pages {
		texts[i] = pg.Text
	}
	out := strings.Join(texts, pageBreak)
	if out != "" {
		out += "\n"
	}
	return []byte(out), nil
}

// Extension returns the file extension for plain-text output.
func (r *TextRenderer) Extension() string {
	return ".txt"
}

// MarkdownRenderer writes one "## Page N" section per page.
type MarkdownRenderer struct{}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// Render builds the Markdown document.
func (r *MarkdownRenderer) Render(pages []core.Page, meta core.BookMetadata, stats core.Stats) ([]byte, error) {
	var b strings.Builder
	if meta.Title != "" {
		fmt.Fprintf(&b, "# %s\n\n", meta.Title)
	}
	if meta.Source != "" {
		fmt.Fprintf(&b, "> source: %s\n\n", meta.Source)
	}
	for _, pg := range pages {
		fmt.Fprintf(&b, "## Page %d\n\n%s\n\n", pg.Number, pg.Text)
	}
	return []byte(strings.TrimRight(b.String(), "\n") + "\n"), nil
}

// Extension returns the file extension for Markdown output.
func (r *MarkdownRenderer) Extension() string {
	return ".md"
}
