package extract

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"codeberg.org/askov/ordkort/internal/scrape"
)

// The speaker icon marks images whose click handler plays a pronunciation.
const speakerMarker = "speaker.gif"

var playSoundRe = regexp.MustCompile(`playSound\('(.*?)'\)`)

// AudioURL scans a rendered dictionary page for a pronunciation MP3 URL.
// It returns ("", nil) when the page carries no resolvable reference: no
// speaker icon, no playSound handler, no fallback anchor, or a fallback
// target that is not an MP3. An error is returned only when the document
// cannot be parsed.
func AudioURL(r io.Reader) (string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	var audioURL string
	doc.Find("img[src]").EachWithBreak(func(_ int, img *goquery.Selection) bool {
		src, _ := img.Attr("src")
		if !strings.Contains(src, speakerMarker) {
			return true
		}

		onclick, _ := img.Attr("onclick")
		m := playSoundRe.FindStringSubmatch(onclick)
		if m == nil {
			return true
		}

		fallback := doc.Find(fmt.Sprintf("a[id='%s_fallback']", m[1]))
		href, ok := fallback.Attr("href")
		if !ok || !strings.HasSuffix(href, ".mp3") {
			return true
		}

		audioURL = href
		return false
	})

	return audioURL, nil
}

// FromCache resolves the audio URL for a word from its cached page. A
// missing cache file yields ("", nil), same as a page without audio.
func FromCache(cache *scrape.Cache, word string) (string, error) {
	r, err := cache.Open(word)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("failed to open cached page for %q: %w", word, err)
	}
	defer r.Close()

	return AudioURL(r)
}
