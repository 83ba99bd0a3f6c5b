package vocab

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// Column names required in the input CSV.
const (
	ColWord        = "Word"
	ColMeaning     = "Meaning"
	ColSentence    = "Example Sentence (Danish)"
	ColTranslation = "Example Translation (English)"
	ColForms       = "Forms"
)

// Entry is a single vocabulary row. Entries are immutable once loaded.
type Entry struct {
	Word        string // The Danish word or phrase
	Meaning     string // Meaning in the learner's language
	Sentence    string // Example sentence (Danish)
	Translation string // Example translation (English)
	Forms       string // Inflected forms, comma separated
}

// ReadFile reads vocabulary entries from a semicolon-delimited CSV file.
func ReadFile(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input CSV: %w", err)
	}
	defer f.Close()

	entries, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return entries, nil
}

// Read parses vocabulary entries from r. The first record is the header;
// header names are trimmed and a leading UTF-8 BOM is stripped. A missing
// required column is an error.
func Read(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimPrefix(name, "\ufeff")
		index[strings.TrimSpace(name)] = i
	}

	required := []string{ColWord, ColMeaning, ColSentence, ColTranslation, ColForms}
	for _, col := range required {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("input CSV is missing required column %q", col)
		}
	}

	var entries []Entry
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}

		field := func(col string) string {
			i := index[col]
			if i >= len(record) {
				return ""
			}
			return record[i]
		}

		entries = append(entries, Entry{
			Word:        field(ColWord),
			Meaning:     field(ColMeaning),
			Sentence:    field(ColSentence),
			Translation: field(ColTranslation),
			Forms:       field(ColForms),
		})
	}

	return entries, nil
}
