// Package processor contains the core pipeline for enriching Danish
// vocabulary with pronunciation audio. It orchestrates word
// normalization, page fetching and caching, audio extraction and
// download, and flashcard CSV generation. This package serves as the
// main coordinator between all other components.
package processor
