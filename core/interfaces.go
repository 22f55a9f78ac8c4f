// Package core defines the shared types and stage interfaces for Flik.
// Each stage of the pagination pipeline is a clean, testable interface.
package core

import (
	"context"

	"github.com/1Seob/Flik-v2-sub000/core/paragraph"
)

// FetchResult holds the raw bytes and response metadata from a fetch.
type FetchResult struct {
	URL        string
	StatusCode int
	Body       []byte
}

// BookMetadata describes where a set of pages came from.
type BookMetadata struct {
	Source      string `json:"source"`
	Title       string `json:"title"`
	Format      string `json:"format"`
	MaxLogical  int    `json:"max_logical"`
	NewlineCost int    `json:"newline_cost"`
	CreatedAt   string `json:"created_at"` // ISO8601
}

// Page is one emitted page of text.
type Page struct {
	Number   int    `json:"number"` // 1-based
	Text     string `json:"text"`
	Logical  int    `json:"logical"`
	Overflow bool   `json:"overflow"`
}

// Stats summarizes one pagination run.
type Stats struct {
	Paragraphs    int `json:"paragraphs"`
	Dropped       int `json:"dropped"`
	Pages         int `json:"pages"`
	OverflowPages int `json:"overflow_pages"`
}

// Fetcher retrieves raw bytes from a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*FetchResult, error)
}

// Extractor turns a source document into an ordered paragraph set.
type Extractor interface {
	Extract(doc []byte) (paragraph.Set, error)
}

// Renderer converts pages (and metadata) into a final output format.
type Renderer interface {
	Render(pages []Page, meta BookMetadata, stats Stats) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".md", ".pdf").
	Extension() string
}
