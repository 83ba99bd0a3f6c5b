package state

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Fetch outcomes.
const (
	StatusFetched = "fetched"
	StatusFailed  = "failed"
)

// Record is one fetch attempt's outcome, keyed by normalized word.
type Record struct {
	Word        string
	Status      string
	AttemptedAt time.Time
	LastError   string
}

// Ledger persists fetch outcomes across runs.
type Ledger struct {
	db *sql.DB
}

// Open opens (or creates) the ledger database at path.
func Open(path string) (*Ledger, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create ledger directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open ledger: %w", err)
	}

	schema := `CREATE TABLE IF NOT EXISTS fetches (
		word TEXT PRIMARY KEY,
		status TEXT NOT NULL,
		attempted_at TIMESTAMP NOT NULL,
		last_error TEXT NOT NULL DEFAULT ''
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create ledger schema: %w", err)
	}

	return &Ledger{db: db}, nil
}

// RecordFetched marks a word's page as fetched and cached.
func (l *Ledger) RecordFetched(word string) error {
	return l.record(word, StatusFetched, "")
}

// RecordFailed marks a fetch attempt as failed with its error.
func (l *Ledger) RecordFailed(word string, fetchErr error) error {
	msg := ""
	if fetchErr != nil {
		msg = fetchErr.Error()
	}
	return l.record(word, StatusFailed, msg)
}

func (l *Ledger) record(word, status, lastError string) error {
	_, err := l.db.Exec(`INSERT INTO fetches (word, status, attempted_at, last_error)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(word) DO UPDATE SET
			status = excluded.status,
			attempted_at = excluded.attempted_at,
			last_error = excluded.last_error`,
		word, status, time.Now().UTC(), lastError)
	if err != nil {
		return fmt.Errorf("failed to record fetch for %q: %w", word, err)
	}
	return nil
}

// Lookup returns the recorded outcome for a word, or nil when the word
// was never attempted.
func (l *Ledger) Lookup(word string) (*Record, error) {
	row := l.db.QueryRow(
		`SELECT word, status, attempted_at, last_error FROM fetches WHERE word = ?`, word)

	var r Record
	if err := row.Scan(&r.Word, &r.Status, &r.AttemptedAt, &r.LastError); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to look up %q: %w", word, err)
	}
	return &r, nil
}

// FailedWords lists words whose most recent fetch attempt failed.
func (l *Ledger) FailedWords() ([]string, error) {
	rows, err := l.db.Query(
		`SELECT word FROM fetches WHERE status = ? ORDER BY word`, StatusFailed)
	if err != nil {
		return nil, fmt.Errorf("failed to query failed words: %w", err)
	}
	defer rows.Close()

	var words []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, err
		}
		words = append(words, w)
	}
	return words, rows.Err()
}

// Close closes the underlying database.
func (l *Ledger) Close() error {
	return l.db.Close()
}
