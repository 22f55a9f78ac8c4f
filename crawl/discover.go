// Package crawl discovers chapter pages for multi-chapter runs.
// Given a table-of-contents page, it returns the chapter links in reading
// order, keeping discovery separate from the pagination pipeline.
package crawl

import (
	"bytes"
	"context"
	"fmt"
	"net/url"

	"github.com/PuerkitoBio/goquery"

	"github.com/1Seob/Flik-v2-sub000/core"
)

// DefaultLinkSelector matches every anchor with an href.
const DefaultLinkSelector = "a[href]"

// maxChapters bounds a single discovery.
const maxChapters = 2000

// DiscoverChapters fetches tocURL and returns the chapter URLs it links
// to, in document order. Links to other hosts, assets, the TOC itself and
// duplicates are skipped. selector narrows which anchors count
// (e.g. "ol.chapters a"); DefaultLinkSelector when empty.
func DiscoverChapters(ctx context.Context, tocURL string, fetcher core.Fetcher, selector string) ([]string, error) {
	base, err := url.Parse(tocURL)
	if err != nil || base.Host == "" {
		return nil, fmt.Errorf("parsing table of contents URL %q: invalid", tocURL)
	}

	result, err := fetcher.Fetch(ctx, tocURL)
	if err != nil {
		return nil, fmt.Errorf("fetching table of contents: %w", err)
	}

	links, err := extractLinks(result.Body, base, selector)
	if err != nil {
		return nil, fmt.Errorf("parsing table of contents: %w", err)
	}

	self := CanonicalURL(tocURL)
	chapters := newLinkSet()
	for _, link := range links {
		if chapters.len() >= maxChapters {
			break
		}
		if link == self || !IsSameHost(link, base.Host) || IsAsset(link) {
			continue
		}
		chapters.add(link)
	}
	return chapters.all(), nil
}

// extractLinks returns every resolved href matched by selector.
func extractLinks(html []byte, base *url.URL, selector string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return nil, err
	}
	if selector == "" {
		selector = DefaultLinkSelector
	}

	var links []string
	doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
		href, exists := s.Attr("href")
		if !exists || href == "" {
			return
		}
		if resolved := resolveHref(href, base); resolved != "" {
			links = append(links, resolved)
		}
	})
	return links, nil
}
