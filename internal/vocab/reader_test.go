package vocab

import (
	"strings"
	"testing"
)

const sampleCSV = `Word;Meaning;Example Sentence (Danish);Example Translation (English);Forms
hus;house;Huset er stort.;The house is big.;huset,huse,husene
løbe;to run;Jeg løber hver dag.;I run every day.;løber,løb,løbet
`

func TestRead(t *testing.T) {
	entries, err := Read(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}

	first := entries[0]
	if first.Word != "hus" {
		t.Errorf("Expected word 'hus', got %q", first.Word)
	}
	if first.Meaning != "house" {
		t.Errorf("Expected meaning 'house', got %q", first.Meaning)
	}
	if first.Sentence != "Huset er stort." {
		t.Errorf("Expected sentence 'Huset er stort.', got %q", first.Sentence)
	}
	if first.Translation != "The house is big." {
		t.Errorf("Expected translation 'The house is big.', got %q", first.Translation)
	}
	if first.Forms != "huset,huse,husene" {
		t.Errorf("Expected forms 'huset,huse,husene', got %q", first.Forms)
	}
}

func TestReadWithBOM(t *testing.T) {
	entries, err := Read(strings.NewReader("\ufeff" + sampleCSV))
	if err != nil {
		t.Fatalf("Read with BOM failed: %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	if entries[0].Word != "hus" {
		t.Errorf("Expected word 'hus', got %q", entries[0].Word)
	}
}

func TestReadHeaderWhitespace(t *testing.T) {
	csvData := " Word ;Meaning; Example Sentence (Danish);Example Translation (English);Forms \nhus;house;Huset er stort.;The house is big.;huset\n"

	entries, err := Read(strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("Read with padded header failed: %v", err)
	}
	if entries[0].Word != "hus" {
		t.Errorf("Expected word 'hus', got %q", entries[0].Word)
	}
}

func TestReadMissingColumn(t *testing.T) {
	csvData := "Word;Meaning;Forms\nhus;house;huset\n"

	_, err := Read(strings.NewReader(csvData))
	if err == nil {
		t.Fatal("Expected error for missing columns, got nil")
	}
	if !strings.Contains(err.Error(), "Example Sentence (Danish)") {
		t.Errorf("Expected error to name the missing column, got: %v", err)
	}
}

func TestReadShortRecord(t *testing.T) {
	csvData := sampleCSV + "kat;cat\n"

	entries, err := Read(strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("Read with short record failed: %v", err)
	}

	last := entries[len(entries)-1]
	if last.Word != "kat" || last.Forms != "" {
		t.Errorf("Expected short record to default missing fields, got %+v", last)
	}
}

func TestReadFileMissing(t *testing.T) {
	if _, err := ReadFile("/nonexistent/input.csv"); err == nil {
		t.Error("Expected error for missing file, got nil")
	}
}
