// Package vocab reads the semicolon-delimited vocabulary CSV that feeds
// the card pipeline. It handles UTF-8 BOM prefixes and validates that
// all required columns are present before any scraping starts.
package vocab
