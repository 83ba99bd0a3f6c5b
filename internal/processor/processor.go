package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"codeberg.org/askov/ordkort/internal/anki"
	"codeberg.org/askov/ordkort/internal/audio"
	"codeberg.org/askov/ordkort/internal/cli"
	"codeberg.org/askov/ordkort/internal/extract"
	"codeberg.org/askov/ordkort/internal/scrape"
	"codeberg.org/askov/ordkort/internal/state"
	"codeberg.org/askov/ordkort/internal/vocab"
	"codeberg.org/askov/ordkort/internal/word"
)

// Processor drives the scrape-cache-extract-download pipeline and the
// final CSV emission. Words are processed strictly in input row order
// over a single browser session.
type Processor struct {
	flags      *cli.Flags
	cache      *scrape.Cache
	fetcher    *scrape.Fetcher
	downloader *audio.Downloader
	synth      *audio.Synthesizer
	ledger     *state.Ledger
}

// New creates a processor around an already-connected page loader. The
// fetch ledger is best-effort: if it cannot be opened the pipeline runs
// without it.
func New(flags *cli.Flags, loader scrape.PageLoader) (*Processor, error) {
	cache, err := scrape.NewCache(flags.CacheDir)
	if err != nil {
		return nil, err
	}

	p := &Processor{
		flags:      flags,
		cache:      cache,
		fetcher:    scrape.NewFetcher(loader, cache, flags.BaseURL),
		downloader: audio.NewDownloader(),
	}

	if ledger, err := state.Open(flags.LedgerPath); err != nil {
		fmt.Printf("⚠️ Fetch ledger unavailable: %v\n", err)
	} else {
		p.ledger = ledger
	}

	if flags.TTSFallback {
		synth, err := audio.NewSynthesizer(&audio.SynthesizerConfig{
			APIKey: cli.GetOpenAIKey(),
			Model:  flags.TTSModel,
			Voice:  flags.TTSVoice,
			Speed:  flags.TTSSpeed,
		})
		if err != nil {
			return nil, fmt.Errorf("TTS fallback requested: %w", err)
		}
		p.synth = synth
	}

	return p, nil
}

// Close releases the fetch ledger.
func (p *Processor) Close() error {
	if p.ledger != nil {
		return p.ledger.Close()
	}
	return nil
}

// Run processes all entries in row order, then writes the two flashcard
// CSVs. Per-word failures are logged and leave that word without audio;
// only setup and output errors abort the run.
func (p *Processor) Run(ctx context.Context, entries []vocab.Entry) error {
	if err := os.MkdirAll(p.flags.MediaDir, 0755); err != nil {
		return fmt.Errorf("failed to create media directory: %w", err)
	}

	audioByWord := make(map[string]string)
	withAudio := 0
	fetchFailed := 0

	for i, entry := range entries {
		clean := word.Normalize(entry.Word)
		fmt.Printf("\nProcessing %d/%d: %s\n", i+1, len(entries), entry.Word)

		if clean == "" {
			fmt.Printf("⚠️ Skipping %q: nothing left after normalization\n", entry.Word)
			continue
		}

		// The cache file is the only signal consulted: a failed fetch
		// from a previous run is retried here.
		if !p.cache.Has(clean) {
			if err := p.fetcher.FetchAndCache(ctx, clean); err != nil {
				fmt.Printf("❌ Failed to save HTML for %s: %v\n", clean, err)
				p.recordFailed(clean, err)
				fetchFailed++
			} else {
				fmt.Printf("✓ Saved HTML for: %s\n", clean)
				p.recordFetched(clean)
			}
		}

		audioURL, err := extract.FromCache(p.cache, clean)
		if err != nil {
			fmt.Printf("⚠️ Failed to read cached page for %s: %v\n", clean, err)
		}

		filename := ""
		if audioURL != "" {
			filename = p.downloader.Download(ctx, audioURL, p.flags.MediaDir, clean)
		} else if p.synth != nil {
			filename = p.synthesizeFallback(ctx, clean)
		}

		if filename != "" {
			audioByWord[entry.Word] = filename
			withAudio++
		}
	}

	cards := anki.BuildCards(entries, audioByWord)

	writer, err := anki.NewWriter(p.flags.OutputDir)
	if err != nil {
		return err
	}
	structuredPath, err := writer.WriteStructured(cards)
	if err != nil {
		return err
	}
	readyPath, err := writer.WriteReady(cards)
	if err != nil {
		return err
	}

	fmt.Printf("\n=== Run Summary ===\n")
	fmt.Printf("Words processed: %d\n", len(entries))
	fmt.Printf("With audio: %d\n", withAudio)
	if fetchFailed > 0 {
		fmt.Printf("Fetch failures: %d\n", fetchFailed)
	}
	if p.ledger != nil {
		if failed, err := p.ledger.FailedWords(); err == nil && len(failed) > 0 {
			fmt.Printf("Words with a failed last fetch (will be retried next run): %v\n", failed)
		}
	}
	fmt.Printf("Structured CSV: %s\n", structuredPath)
	fmt.Printf("Ready CSV: %s\n", readyPath)
	fmt.Printf("===================\n")
	fmt.Printf("\n✨ Anki CSV files generated successfully.\n")

	return nil
}

// synthesizeFallback generates TTS audio for a word with no dictionary
// recording, with the same existence-gated skip as the downloader.
func (p *Processor) synthesizeFallback(ctx context.Context, clean string) string {
	filename := clean + ".mp3"
	outputPath := filepath.Join(p.flags.MediaDir, filename)

	if _, err := os.Stat(outputPath); err == nil {
		fmt.Printf("⏩ Skipped (already exists): %s\n", filename)
		return filename
	}

	if err := p.synth.Synthesize(ctx, clean, outputPath); err != nil {
		fmt.Printf("⚠️ TTS fallback failed for %s: %v\n", clean, err)
		return ""
	}

	fmt.Printf("🎧 Synthesized: %s\n", filename)
	return filename
}

func (p *Processor) recordFetched(clean string) {
	if p.ledger == nil {
		return
	}
	if err := p.ledger.RecordFetched(clean); err != nil {
		fmt.Printf("⚠️ %v\n", err)
	}
}

func (p *Processor) recordFailed(clean string, fetchErr error) {
	if p.ledger == nil {
		return
	}
	if err := p.ledger.RecordFailed(clean, fetchErr); err != nil {
		fmt.Printf("⚠️ %v\n", err)
	}
}
