package audio

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker"
)

const downloadTimeout = 30 * time.Second

// statusError marks a completed request with a non-success status, as
// opposed to a transport failure.
type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.code)
}

// Downloader fetches pronunciation files. Requests go through a circuit
// breaker so a dead audio host stops being hammered mid-run.
type Downloader struct {
	client  *resty.Client
	breaker *gobreaker.CircuitBreaker
}

// NewDownloader creates a downloader with a fixed request timeout.
func NewDownloader() *Downloader {
	return &Downloader{
		client: resty.New().SetTimeout(downloadTimeout),
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name: "audio-download",
		}),
	}
}

// Download fetches audioURL and writes it to dir as <word>.mp3, returning
// the filename written. It returns "" without touching the network when
// the URL is empty or not an MP3, and returns the existing filename when
// the target file is already present. Failures are logged and reported as
// "", never raised to the caller.
func (d *Downloader) Download(ctx context.Context, audioURL, dir, word string) string {
	if audioURL == "" || !strings.HasSuffix(audioURL, ".mp3") {
		return ""
	}

	filename := word + ".mp3"
	outputPath := filepath.Join(dir, filename)

	if _, err := os.Stat(outputPath); err == nil {
		fmt.Printf("⏩ Skipped (already exists): %s\n", filename)
		return filename
	}

	body, err := d.breaker.Execute(func() (interface{}, error) {
		resp, err := d.client.R().SetContext(ctx).Get(audioURL)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode() != http.StatusOK {
			return nil, &statusError{code: resp.StatusCode()}
		}
		return resp.Body(), nil
	})
	if err != nil {
		var se *statusError
		if errors.As(err, &se) {
			fmt.Printf("⚠️ Failed to download %s: %v\n", audioURL, err)
		} else {
			fmt.Printf("❌ Error downloading audio from %s: %v\n", audioURL, err)
		}
		return ""
	}

	if err := os.WriteFile(outputPath, body.([]byte), 0644); err != nil {
		fmt.Printf("❌ Failed to write %s: %v\n", filename, err)
		return ""
	}

	fmt.Printf("🎧 Downloaded: %s\n", filename)
	return filename
}
