package anki

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

// Output filenames, fixed by the flashcard import convention.
const (
	StructuredFile = "anki_cards_structured.csv"
	ReadyFile      = "anki_cards_ready.csv"
)

// Writer emits the flashcard CSVs into an output directory.
type Writer struct {
	outputDir string
}

// NewWriter creates a writer, creating the output directory if needed.
func NewWriter(outputDir string) (*Writer, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	return &Writer{outputDir: outputDir}, nil
}

// WriteStructured writes the structured table and returns its path.
func (w *Writer) WriteStructured(cards []Card) (string, error) {
	records := [][]string{
		{"Word", "Audio", "Danish Sentence", "Meaning", "English Translation", "Forms"},
	}
	for _, c := range cards {
		records = append(records, []string{
			c.Word, c.Audio, c.Sentence, c.Meaning, c.Translation, c.Forms,
		})
	}
	return w.write(StructuredFile, records)
}

// WriteReady writes the front/back table and returns its path.
func (w *Writer) WriteReady(cards []Card) (string, error) {
	records := [][]string{{"Front", "Back"}}
	for _, c := range cards {
		records = append(records, []string{c.Front(), c.Back()})
	}
	return w.write(ReadyFile, records)
}

func (w *Writer) write(name string, records [][]string) (string, error) {
	path := filepath.Join(w.outputDir, name)

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer file.Close()

	cw := csv.NewWriter(file)
	cw.Comma = ';'
	if err := cw.WriteAll(records); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", name, err)
	}
	return path, nil
}
