// Package scrape fetches rendered dictionary pages from ordnet.dk and
// caches the HTML on disk. Pages are rendered through a headless browser
// because the pronunciation controls are injected client-side; cached
// pages are never invalidated.
package scrape
