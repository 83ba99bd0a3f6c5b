package word

import (
	"regexp"
	"strings"
)

// Keeps ASCII letters plus the Latin Extended ranges that cover Danish
// diacritics (æ, ø, å and friends). Everything else is stripped.
var nonLetter = regexp.MustCompile(`[^a-z\x{00C0}-\x{024F}\x{1E00}-\x{1EFF}]`)

// Normalize reduces a word to a form that is safe for lookup URLs and
// filenames: lowercased, letters only. Normalize is idempotent and an
// empty input yields an empty output.
func Normalize(w string) string {
	return nonLetter.ReplaceAllString(strings.ToLower(w), "")
}
