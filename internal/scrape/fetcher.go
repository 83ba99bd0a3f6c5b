package scrape

import (
	"context"
	"fmt"
	"net/url"
)

// DefaultBaseURL is the ordnet.dk lookup URL prefix; the normalized word
// is appended as the query value.
const DefaultBaseURL = "https://ordnet.dk/ddo/ordbog?query="

// Fetcher loads dictionary pages and stores them in the cache.
type Fetcher struct {
	loader  PageLoader
	cache   *Cache
	baseURL string
}

// NewFetcher creates a fetcher. An empty baseURL falls back to the
// ordnet.dk lookup URL.
func NewFetcher(loader PageLoader, cache *Cache, baseURL string) *Fetcher {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Fetcher{loader: loader, cache: cache, baseURL: baseURL}
}

// LookupURL returns the dictionary URL for a normalized word.
func (f *Fetcher) LookupURL(word string) string {
	return f.baseURL + url.QueryEscape(word)
}

// FetchAndCache renders the lookup page for word and saves the HTML. On
// failure nothing is cached, so the word will be re-attempted on the next
// run.
func (f *Fetcher) FetchAndCache(ctx context.Context, word string) error {
	html, err := f.loader.LoadHTML(ctx, f.LookupURL(word))
	if err != nil {
		return fmt.Errorf("failed to fetch page for %q: %w", word, err)
	}
	return f.cache.Save(word, html)
}
