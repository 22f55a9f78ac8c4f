package render

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1Seob/Flik-v2-sub000/core"
)

var (
	testPages = []core.Page{
		{Number: 1, Text: "Hello world.\n\nSecond short paragraph.", Logical: 55},
		{Number: 2, Text: "Third.", Logical: 6},
	}
	testMeta  = core.BookMetadata{Source: "book.json", Title: "Book", Format: "json", MaxLogical: 300, NewlineCost: 20}
	testStats = core.Stats{Paragraphs: 3, Pages: 2}
)

// Compile-time check that every renderer satisfies core.Renderer.
var _ = []core.Renderer{
	(*TextRenderer)(nil),
	(*MarkdownRenderer)(nil),
	(*JSONRenderer)(nil),
	(*PDFRenderer)(nil),
}

func TestTextRenderer(t *testing.T) {
	r := NewTextRenderer()
	data, err := r.Render(testPages, testMeta, testStats)
	require.NoError(t, err)
	assert.Equal(t, "Hello world.\n\nSecond short paragraph.\n\f\nThird.\n", string(data))
	assert.Equal(t, ".txt", r.Extension())

	empty, err := r.Render(nil, testMeta, core.Stats{})
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestMarkdownRenderer(t *testing.T) {
	r := NewMarkdownRenderer()
	data, err := r.Render(testPages, testMeta, testStats)
	require.NoError(t, err)

	want := "# Book\n\n> source: book.json\n\n" +
		"## Page 1\n\nHello world.\n\nSecond short paragraph.\n\n" +
		"## Page 2\n\nThird.\n"
	assert.Equal(t, want, string(data))
	assert.Equal(t, ".md", r.Extension())
}

func TestJSONRenderer(t *testing.T) {
	r := NewJSONRenderer()
	data, err := r.Render(testPages, testMeta, testStats)
	require.NoError(t, err)

	var got BookJSON
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, testPages, got.Pages)
	assert.Equal(t, testMeta, got.Metadata)
	assert.Equal(t, testStats, got.Stats)

	empty, err := r.Render(nil, testMeta, core.Stats{})
	require.NoError(t, err)
	assert.Contains(t, string(empty), `"pages": []`)
}

func TestPDFRenderer(t *testing.T) {
	r := NewPDFRenderer("")
	data, err := r.Render(testPages, testMeta, testStats)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
	assert.Contains(t, string(data), "/Count 2")
	assert.Equal(t, ".pdf", r.Extension())

	empty, err := r.Render(nil, testMeta, core.Stats{})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(empty, []byte("%PDF-")))
}

func TestPDFRendererMissingFont(t *testing.T) {
	r := NewPDFRenderer(filepath.Join(t.TempDir(), "missing.ttf"))
	_, err := r.Render(testPages, testMeta, testStats)
	assert.Error(t, err)
}
