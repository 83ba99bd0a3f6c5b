// Package word normalizes Danish dictionary words into the canonical
// lowercase form used as cache and media filename keys.
package word
