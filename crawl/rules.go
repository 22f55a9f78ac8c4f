// Package crawl — chapter link rules.
// Decides which links on a table-of-contents page can be chapters.
package crawl

import (
	"net/url"
	"path"
	"strings"
)

// assetExtensions are file extensions that never hold chapter text.
var assetExtensions = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true,
	".svg": true, ".webp": true, ".ico": true, ".bmp": true,
	".css": true, ".js": true, ".mjs": true,
	".woff": true, ".woff2": true, ".ttf": true, ".otf": true, ".eot": true,
	".mp3": true, ".mp4": true, ".wav": true, ".webm": true,
	".zip": true, ".epub": true, ".pdf": true,
	".ncx": true, ".opf": true,
}

// IsSameHost checks if the given URL is served from host.
func IsSameHost(rawURL string, host string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return parsed.Host == host
}

// IsAsset checks if a URL points to an image, stylesheet, font or package file.
func IsAsset(rawURL string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return assetExtensions[strings.ToLower(path.Ext(parsed.Path))]
}

// CanonicalURL strips the fragment so "ch1.html#p3" and "ch1.html" dedupe.
func CanonicalURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	parsed.Fragment = ""
	parsed.RawFragment = ""
	return parsed.String()
}

// resolveHref resolves a potentially relative href against base.
// Non-navigational schemes and same-page anchors yield "".
func resolveHref(href string, base *url.URL) string {
	href = strings.TrimSpace(href)
	for _, prefix := range []string{"mailto:", "javascript:", "tel:", "#"} {
		if strings.HasPrefix(href, prefix) {
			return ""
		}
	}

	parsed, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return CanonicalURL(base.ResolveReference(parsed).String())
}
