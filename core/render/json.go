// Package render — JSON renderer.
// Emits the pages with their logical cost so a persistence layer can store
// them as-is, 1-indexed.
package render

import (
	"encoding/json"
	"fmt"

	"github.com/1Seob/Flik-v2-sub000/core"
)

// BookJSON is the complete JSON output for one paginated source.
type BookJSON struct {
	Metadata core.BookMetadata `json:"metadata"`
	Pages    []core.Page       `json:"pages"`
	Stats    core.Stats        `json:"stats"`
}

// JSONRenderer produces structured JSON output.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// Render marshals the pages, metadata and stats.
func (r *JSONRenderer) Render(pages []core.Page, meta core.BookMetadata, stats core.Stats) ([]byte, error) {
	if pages == nil {
		pages = []core.Page{}
	}
	data, err := json.MarshalIndent(BookJSON{Metadata: meta, Pages: pages, Stats: stats}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return data, nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}
