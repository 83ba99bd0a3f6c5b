// Package extract locates pronunciation audio URLs inside cached
// ordnet.dk pages. The site triggers playback from an inline script
// handler; the direct MP3 link lives in a hidden fallback anchor keyed by
// the script's sound identifier.
package extract
