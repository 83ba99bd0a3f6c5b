// Package state records fetch outcomes in a small SQLite ledger. The
// HTML cache alone cannot tell "never attempted" apart from "attempted
// and failed"; the ledger keeps that distinction for the run summary
// without changing the retry behavior.
package state
