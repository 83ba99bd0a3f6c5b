package processor

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"codeberg.org/askov/ordkort/internal/cli"
	"codeberg.org/askov/ordkort/internal/testutil"
	"codeberg.org/askov/ordkort/internal/vocab"
)

// fakeLoader stands in for the headless browser session.
type fakeLoader struct {
	html  string
	err   error
	calls int
}

func (f *fakeLoader) LoadHTML(_ context.Context, _ string) (string, error) {
	f.calls++
	return f.html, f.err
}

func (f *fakeLoader) Close() error { return nil }

func pageWithAudio(mp3URL string) string {
	return fmt.Sprintf(`<html><body>
<img src="/theme/img/speaker.gif" onclick="playSound('11_1')" alt="Udtale">
<a id="11_1_fallback" href="%s">Udtale</a>
</body></html>`, mp3URL)
}

const pageWithoutAudio = `<html><body><div class="artikel">hus</div></body></html>`

func testFlags(t *testing.T) *cli.Flags {
	t.Helper()

	base := t.TempDir()
	flags := cli.NewFlags()
	flags.InputCSV = filepath.Join(base, "input.csv")
	flags.CacheDir = filepath.Join(base, "cache")
	flags.OutputDir = filepath.Join(base, "output")
	flags.MediaDir = filepath.Join(base, "media")
	flags.LedgerPath = filepath.Join(base, "fetches.db")
	flags.RenderWait = time.Millisecond
	return flags
}

func husEntry() vocab.Entry {
	return vocab.Entry{
		Word:        "hus",
		Meaning:     "house",
		Sentence:    "Huset er stort.",
		Translation: "The house is big.",
		Forms:       "huset,huse,husene",
	}
}

func TestRunDownloadsAudio(t *testing.T) {
	downloads := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		downloads++
		w.Write([]byte{0xFF, 0xFB, 0x90, 0x00})
	}))
	defer server.Close()

	flags := testFlags(t)
	loader := &fakeLoader{html: pageWithAudio(server.URL + "/hus.mp3")}

	p, err := New(flags, loader)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer p.Close()

	if err := p.Run(context.Background(), []vocab.Entry{husEntry()}); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if loader.calls != 1 {
		t.Errorf("Expected 1 page load, got %d", loader.calls)
	}
	if downloads != 1 {
		t.Errorf("Expected 1 audio download, got %d", downloads)
	}

	// Cache, media and output files must all exist.
	testutil.AssertFileExists(t, filepath.Join(flags.CacheDir, "hus.html"))
	testutil.AssertFileExists(t, filepath.Join(flags.MediaDir, "hus.mp3"))

	records := testutil.ReadSemicolonCSV(t, filepath.Join(flags.OutputDir, "anki_cards_structured.csv"))
	if len(records) != 2 {
		t.Fatalf("Expected header plus 1 row, got %d", len(records))
	}
	if records[1][1] != "[sound:hus.mp3]" {
		t.Errorf("Expected audio tag '[sound:hus.mp3]', got %q", records[1][1])
	}
}

func TestRunCacheHitSkipsFetch(t *testing.T) {
	flags := testFlags(t)

	// Seed the cache before the run.
	testutil.CreateTestFile(t, filepath.Join(flags.CacheDir, "hus.html"), []byte(pageWithoutAudio))

	loader := &fakeLoader{html: pageWithoutAudio}
	p, err := New(flags, loader)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer p.Close()

	if err := p.Run(context.Background(), []vocab.Entry{husEntry()}); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if loader.calls != 0 {
		t.Errorf("Expected the page loader to never be invoked on a cache hit, got %d calls", loader.calls)
	}
}

func TestRunNoAudioReference(t *testing.T) {
	flags := testFlags(t)
	loader := &fakeLoader{html: pageWithoutAudio}

	p, err := New(flags, loader)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer p.Close()

	if err := p.Run(context.Background(), []vocab.Entry{husEntry()}); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	structured := testutil.ReadSemicolonCSV(t, filepath.Join(flags.OutputDir, "anki_cards_structured.csv"))
	row := structured[1]
	if row[1] != "[sound:]" {
		t.Errorf("Expected Audio '[sound:]', got %q", row[1])
	}
	if row[2] != "Huset er stort." {
		t.Errorf("Expected Danish Sentence 'Huset er stort.', got %q", row[2])
	}

	ready := testutil.ReadSemicolonCSV(t, filepath.Join(flags.OutputDir, "anki_cards_ready.csv"))
	wantFront := "<b>hus</b><br>[sound:]<br>Huset er stort."
	if ready[1][0] != wantFront {
		t.Errorf("Front = %q, want %q", ready[1][0], wantFront)
	}
}

func TestRunExistingMediaSkipsDownload(t *testing.T) {
	downloads := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		downloads++
	}))
	defer server.Close()

	flags := testFlags(t)
	testutil.CreateTestFile(t, filepath.Join(flags.MediaDir, "hus.mp3"), []byte("existing"))

	loader := &fakeLoader{html: pageWithAudio(server.URL + "/hus.mp3")}
	p, err := New(flags, loader)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer p.Close()

	if err := p.Run(context.Background(), []vocab.Entry{husEntry()}); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if downloads != 0 {
		t.Errorf("Expected zero network calls for pre-existing media, got %d", downloads)
	}

	records := testutil.ReadSemicolonCSV(t, filepath.Join(flags.OutputDir, "anki_cards_structured.csv"))
	if records[1][1] != "[sound:hus.mp3]" {
		t.Errorf("Expected existing audio tag, got %q", records[1][1])
	}
}

func TestRunFetchFailureContinues(t *testing.T) {
	flags := testFlags(t)
	loader := &fakeLoader{err: errors.New("navigation failed")}

	p, err := New(flags, loader)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer p.Close()

	if err := p.Run(context.Background(), []vocab.Entry{husEntry()}); err != nil {
		t.Fatalf("Run should continue past fetch failures, got: %v", err)
	}

	// No cache file for the failed word and an empty sound tag.
	testutil.AssertFileNotExists(t, filepath.Join(flags.CacheDir, "hus.html"))
	records := testutil.ReadSemicolonCSV(t, filepath.Join(flags.OutputDir, "anki_cards_structured.csv"))
	if records[1][1] != "[sound:]" {
		t.Errorf("Expected empty sound tag, got %q", records[1][1])
	}
}
