// Package fetch implements the Fetcher interface and source loading.
// Sources are either local files or http(s) URLs.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/1Seob/Flik-v2-sub000/core"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "Flik/2.0 (paginator)"
	maxBodyBytes     = 64 << 20
)

// HTTPFetcher fetches sources via HTTP.
type HTTPFetcher struct {
	client *http.Client
}

// New creates an HTTPFetcher with a sensible timeout.
func New() *HTTPFetcher {
	return &HTTPFetcher{
		client: &http.Client{Timeout: defaultTimeout},
	}
}

// Fetch retrieves the body of the given URL.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (*core.FetchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", defaultUserAgent)
	req.Header.Set("Accept", "application/json,text/html,application/xhtml+xml")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	return &core.FetchResult{
		URL:        url,
		StatusCode: resp.StatusCode,
		Body:       body,
	}, nil
}

// IsURL reports whether src names an http(s) resource rather than a file.
func IsURL(src string) bool {
	u, err := url.Parse(src)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// Source reads src from disk, or through fetcher when src is a URL.
func Source(ctx context.Context, src string, fetcher core.Fetcher) ([]byte, error) {
	if IsURL(src) {
		res, err := fetcher.Fetch(ctx, src)
		if err != nil {
			return nil, err
		}
		return res.Body, nil
	}
	data, err := os.ReadFile(src)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", src, err)
	}
	return data, nil
}
