package scrape

import (
	"context"
	"fmt"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// PageLoader loads a URL and returns the fully rendered HTML.
type PageLoader interface {
	LoadHTML(ctx context.Context, url string) (string, error)
	Close() error
}

// Browser is a headless Chrome session shared by a whole run. It is
// acquired once at pipeline start and closed at the end; a session-level
// failure aborts the run.
type Browser struct {
	browser *rod.Browser
	launch  *launcher.Launcher
	settle  time.Duration
}

// NewBrowser launches a headless browser. settle is the fixed delay after
// page load that gives the dictionary's dynamic content time to render.
func NewBrowser(settle time.Duration) (*Browser, error) {
	l := launcher.New().
		Headless(true).
		Set("window-size", "1920,1080")

	controlURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("failed to launch headless browser: %w", err)
	}

	b := rod.New().ControlURL(controlURL)
	if err := b.Connect(); err != nil {
		l.Cleanup()
		return nil, fmt.Errorf("failed to connect to browser: %w", err)
	}

	return &Browser{browser: b, launch: l, settle: settle}, nil
}

// LoadHTML navigates to url, waits for the page to load plus the settle
// delay, and returns the rendered document.
func (b *Browser) LoadHTML(ctx context.Context, url string) (string, error) {
	page, err := b.browser.Page(proto.TargetCreateTarget{URL: url})
	if err != nil {
		return "", fmt.Errorf("failed to open page: %w", err)
	}
	defer page.Close()

	page = page.Context(ctx)
	if err := page.WaitLoad(); err != nil {
		return "", fmt.Errorf("failed to load %s: %w", url, err)
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-time.After(b.settle):
	}

	html, err := page.HTML()
	if err != nil {
		return "", fmt.Errorf("failed to read page HTML: %w", err)
	}
	return html, nil
}

// Close shuts down the browser session and its underlying process.
func (b *Browser) Close() error {
	err := b.browser.Close()
	b.launch.Cleanup()
	return err
}
