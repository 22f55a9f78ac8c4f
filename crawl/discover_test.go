package crawl

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1Seob/Flik-v2-sub000/core"
)

type stubFetcher map[string]string

func (s stubFetcher) Fetch(_ context.Context, url string) (*core.FetchResult, error) {
	body, ok := s[url]
	if !ok {
		return nil, errors.New("not found")
	}
	return &core.FetchResult{URL: url, StatusCode: 200, Body: []byte(body)}, nil
}

const toc = `<html><body>
<nav><a href="/">Home</a></nav>
<ol class="chapters">
  <li><a href="ch-1.html">1장</a></li>
  <li><a href="ch-2.html#start">2장</a></li>
  <li><a href="ch-1.html">1장 (again)</a></li>
  <li><a href="https://other.example/ch-3.html">mirror</a></li>
  <li><a href="cover.jpg">cover</a></li>
  <li><a href="#top">top</a></li>
  <li><a href="mailto:author@example.com">mail</a></li>
  <li><a href="/novel/toc.html">contents</a></li>
  <li><a href="/novel/ch-3.html">3장</a></li>
</ol>
</body></html>`

func TestDiscoverChapters(t *testing.T) {
	f := stubFetcher{"https://books.example/novel/toc.html": toc}

	got, err := DiscoverChapters(context.Background(), "https://books.example/novel/toc.html", f, "ol.chapters a")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"https://books.example/novel/ch-1.html",
		"https://books.example/novel/ch-2.html",
		"https://books.example/novel/ch-3.html",
	}, got)
}

func TestDiscoverChaptersDefaultSelector(t *testing.T) {
	f := stubFetcher{"https://books.example/novel/toc.html": toc}

	got, err := DiscoverChapters(context.Background(), "https://books.example/novel/toc.html", f, "")
	require.NoError(t, err)
	assert.Equal(t, "https://books.example/", got[0])
	assert.Len(t, got, 4)
}

func TestDiscoverChaptersErrors(t *testing.T) {
	_, err := DiscoverChapters(context.Background(), "not a url", stubFetcher{}, "")
	assert.Error(t, err)

	_, err = DiscoverChapters(context.Background(), "https://books.example/missing", stubFetcher{}, "")
	assert.ErrorContains(t, err, "fetching table of contents")
}

func TestRules(t *testing.T) {
	assert.True(t, IsSameHost("https://a.example/x", "a.example"))
	assert.False(t, IsSameHost("https://b.example/x", "a.example"))
	assert.True(t, IsAsset("https://a.example/img/COVER.JPG"))
	assert.False(t, IsAsset("https://a.example/ch-1.xhtml"))
	assert.Equal(t, "https://a.example/ch-1.html", CanonicalURL("https://a.example/ch-1.html#p4"))
}

func TestLinkSet(t *testing.T) {
	s := newLinkSet()
	s.add("a")
	s.add("b")
	s.add("a")
	assert.Equal(t, 2, s.len())
	assert.Equal(t, []string{"a", "b"}, s.all())
}
