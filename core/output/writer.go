// Package output handles file naming and writing for rendered books.
// A single source is written as one flat file named after the source
// (book.json → book.md, https://example.com/novel/1 → example_com_novel_1.md).
// Chapters of a multi-chapter run mirror their URL path.
package output

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

// Writer writes rendered output to disk.
type Writer struct {
	OutputDir string
}

// New creates a Writer targeting the given output directory.
// If outputDir is empty, it defaults to the current working directory.
func New(outputDir string) (*Writer, error) {
	if outputDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		outputDir = wd
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	return &Writer{OutputDir: outputDir}, nil
}

// WriteSource writes output for a single source (file path or URL).
func (w *Writer) WriteSource(src string, data []byte, ext string) (string, error) {
	path := filepath.Join(w.OutputDir, nameFromSource(src)+ext)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing file %s: %w", path, err)
	}
	return path, nil
}

// WriteChapter writes output for one chapter URL, mirroring its path.
// Example: https://site.com/novel/ch-1 → <dir>/novel/ch-1.md
func (w *Writer) WriteChapter(rawURL string, data []byte, ext string) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parsing URL: %w", err)
	}

	urlPath := strings.Trim(parsed.Path, "/")
	if urlPath == "" {
		urlPath = "index"
	}
	segments := strings.Split(urlPath, "/")
	for i, seg := range segments {
		segments[i] = sanitize(strings.TrimSuffix(seg, filepath.Ext(seg)))
	}

	fullPath := filepath.Join(append([]string{w.OutputDir}, segments...)...) + ext

	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating directory %s: %w", dir, err)
	}

	if err := os.WriteFile(fullPath, data, 0o644); err != nil {
		return "", fmt.Errorf("writing file %s: %w", fullPath, err)
	}
	return fullPath, nil
}

// nameFromSource converts a source into a flat file name.
func nameFromSource(src string) string {
	parsed, err := url.Parse(src)
	if err != nil || parsed.Host == "" {
		base := filepath.Base(src)
		return sanitize(strings.TrimSuffix(base, filepath.Ext(base)))
	}

	parts := []string{sanitize(parsed.Host)}
	path := strings.Trim(parsed.Path, "/")
	if path != "" {
		for _, seg := range strings.Split(path, "/") {
			parts = append(parts, sanitize(strings.TrimSuffix(seg, filepath.Ext(seg))))
		}
	}
	return strings.Join(parts, "_")
}

// sanitize replaces everything but letters and digits with underscores.
// Hangul titles stay readable.
func sanitize(s string) string {
	if s == "" {
		return "_"
	}
	var b strings.Builder
	for _, ch := range s {
		if unicode.IsLetter(ch) || unicode.IsDigit(ch) || ch == '-' {
			b.WriteRune(ch)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}
