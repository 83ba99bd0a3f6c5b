// Package anki shapes vocabulary entries into flashcards and writes the
// two semicolon-delimited import CSVs: a structured table and a
// front/back table with HTML-formatted card content.
package anki
