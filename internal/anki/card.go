package anki

import (
	"fmt"
	"strings"

	"codeberg.org/askov/ordkort/internal/vocab"
)

// Card is a single flashcard derived from a vocabulary entry and its
// resolved audio filename.
type Card struct {
	Word        string // The Danish word, as given in the input
	Audio       string // Anki sound tag, "[sound:]" when no audio
	Sentence    string // Example sentence (Danish)
	Meaning     string // Meaning of the word
	Translation string // Example translation (English)
	Forms       string // Inflected forms
}

// AudioTag formats an audio filename as an Anki sound tag. An empty
// filename yields "[sound:]".
func AudioTag(filename string) string {
	return fmt.Sprintf("[sound:%s]", filename)
}

// BuildCards merges per-word audio filenames onto the input entries by
// word and derives the display fields. Entries without a matching audio
// result get an empty sound tag.
func BuildCards(entries []vocab.Entry, audioByWord map[string]string) []Card {
	cards := make([]Card, 0, len(entries))
	for _, e := range entries {
		cards = append(cards, Card{
			Word:        e.Word,
			Audio:       AudioTag(audioByWord[e.Word]),
			Sentence:    strings.TrimSpace(e.Sentence),
			Meaning:     strings.TrimSpace(e.Meaning),
			Translation: strings.TrimSpace(e.Translation),
			Forms:       strings.TrimSpace(e.Forms),
		})
	}
	return cards
}

// Front renders the question side: bold word, sound tag, example sentence.
func (c Card) Front() string {
	return fmt.Sprintf("<b>%s</b><br>%s<br>%s", c.Word, c.Audio, c.Sentence)
}

// Back renders the answer side: meaning, grayed translation, italicized
// forms list.
func (c Card) Back() string {
	return fmt.Sprintf("%s<br><span style='color:gray;'>%s</span><br><i><b>Forms:</b> %s</i>",
		c.Meaning, c.Translation, c.Forms)
}
