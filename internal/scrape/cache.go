package scrape

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Cache stores one rendered HTML page per normalized word. Entries are
// created on first fetch and never expire.
type Cache struct {
	dir string
}

// NewCache creates the cache directory if needed.
func NewCache(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}
	return &Cache{dir: dir}, nil
}

// Path returns the cache file path for a normalized word.
func (c *Cache) Path(word string) string {
	return filepath.Join(c.dir, word+".html")
}

// Has reports whether a cached page exists for the word. File existence is
// the only signal: a failed fetch from a previous run looks identical to a
// word that was never attempted.
func (c *Cache) Has(word string) bool {
	_, err := os.Stat(c.Path(word))
	return err == nil
}

// Save writes the rendered HTML for a word.
func (c *Cache) Save(word, html string) error {
	if err := os.WriteFile(c.Path(word), []byte(html), 0644); err != nil {
		return fmt.Errorf("failed to write cache file: %w", err)
	}
	return nil
}

// Open returns a reader over the cached page for a word.
func (c *Cache) Open(word string) (io.ReadCloser, error) {
	return os.Open(c.Path(word))
}
