// Package extract implements the Extractor interface for HTML sources.
// It turns a book chapter page (HTML or EPUB XHTML) into a paragraph set by:
//  1. Removing noise elements (nav, footer, scripts, images, etc.)
//  2. Finding the best content container (<main>, <article>, or <body>)
//  3. Taking each paragraph element, in document order, as one paragraph
package extract

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/PuerkitoBio/goquery"

	"github.com/1Seob/Flik-v2-sub000/core/paragraph"
)

// DefaultSelector picks paragraph elements inside the content container.
const DefaultSelector = "p"

// ErrNoContent is returned when no element in the content container
// matches the paragraph selector.
var ErrNoContent = errors.New("no paragraphs found in HTML")

// noiseSelectors are HTML elements removed before extraction.
// None of them carry body text of a chapter.
var noiseSelectors = []string{
	"script", "style", "noscript",
	"nav", "footer", "header",
	"img", "picture", "figure", "figcaption",
	"iframe", "video", "audio",
	"svg", "canvas",
	"form", "button", "input", "select", "textarea",
	".sidebar", ".menu", ".navigation", ".ads", ".advertisement",
}

// HTMLExtractor pulls paragraphs out of an HTML document.
type HTMLExtractor struct {
	// Selector matches paragraph elements; DefaultSelector when empty.
	Selector string
	// Markup keeps inline emphasis and links by converting each paragraph
	// to Markdown instead of taking its plain text.
	Markup bool
}

// New creates an HTMLExtractor.
func New(selector string, markup bool) *HTMLExtractor {
	if selector == "" {
		selector = DefaultSelector
	}
	return &HTMLExtractor{Selector: selector, Markup: markup}
}

// Extract parses doc and returns its paragraphs keyed "0", "1", ... in
// document order. Paragraph text is returned raw; normalization happens
// downstream.
func (e *HTMLExtractor) Extract(doc []byte) (paragraph.Set, error) {
	root, err := goquery.NewDocumentFromReader(bytes.NewReader(doc))
	if err != nil {
		return paragraph.Set{}, fmt.Errorf("parsing HTML: %w", err)
	}

	for _, sel := range noiseSelectors {
		root.Find(sel).Remove()
	}

	// <main> is the most semantically correct, then <article>, then <body>.
	// The parser always synthesizes a <body>, so the root is only a fallback.
	content := root.Selection
	for _, tag := range []string{"main", "article", "body"} {
		sel := root.Find(tag)
		if sel.Length() > 0 {
			content = sel.First()
			break
		}
	}

	selector := e.Selector
	if selector == "" {
		selector = DefaultSelector
	}

	matches := content.Find(selector)
	if matches.Length() == 0 {
		return paragraph.Set{}, fmt.Errorf("%w (selector %q)", ErrNoContent, selector)
	}

	var (
		texts   []string
		convErr error
	)
	matches.EachWithBreak(func(i int, s *goquery.Selection) bool {
		text, err := e.paragraphText(s)
		if err != nil {
			convErr = fmt.Errorf("paragraph %d: %w", i, err)
			return false
		}
		texts = append(texts, text)
		return true
	})
	if convErr != nil {
		return paragraph.Set{}, convErr
	}
	return paragraph.FromSlice(texts), nil
}

func (e *HTMLExtractor) paragraphText(s *goquery.Selection) (string, error) {
	if !e.Markup {
		return s.Text(), nil
	}
	inner, err := s.Html()
	if err != nil {
		return "", fmt.Errorf("serializing paragraph: %w", err)
	}
	md, err := htmltomarkdown.ConvertString(inner)
	if err != nil {
		return "", fmt.Errorf("converting HTML to markdown: %w", err)
	}
	return strings.TrimSpace(md), nil
}

// Title returns the document <title>, or "" when there is none.
func Title(doc []byte) string {
	root, err := goquery.NewDocumentFromReader(bytes.NewReader(doc))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(root.Find("title").First().Text())
}
