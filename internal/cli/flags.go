package cli

import (
	"os"
	"path/filepath"
	"runtime"
	"time"

	"codeberg.org/askov/ordkort/internal/scrape"
)

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile    string
	InputCSV   string
	CacheDir   string
	OutputDir  string
	MediaDir   string
	LedgerPath string

	// Scraping flags
	BaseURL    string
	RenderWait time.Duration

	// TTS fallback flags
	TTSFallback bool
	TTSModel    string
	TTSVoice    string
	TTSSpeed    float64
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		InputCSV:   filepath.Join("data", "input", "danish_vocab_input.csv"),
		CacheDir:   filepath.Join("cache", "html_pages"),
		OutputDir:  filepath.Join("data", "output"),
		MediaDir:   DefaultMediaDir(),
		LedgerPath: filepath.Join("cache", "fetches.db"),
		BaseURL:    scrape.DefaultBaseURL,
		RenderWait: 3 * time.Second,
		TTSModel:   "gpt-4o-mini-tts",
		TTSVoice:   "alloy",
		TTSSpeed:   0.9,
	}
}

// DefaultMediaDir returns the Anki collection.media directory for the
// current platform. Audio files must live there for Anki's sound tags to
// resolve.
func DefaultMediaDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "collection.media"
	}
	if runtime.GOOS == "darwin" {
		return filepath.Join(home, "Library", "Application Support", "Anki2", "User 1", "collection.media")
	}
	return filepath.Join(home, ".local", "share", "Anki2", "User 1", "collection.media")
}
