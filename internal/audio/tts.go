package audio

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/sashabaranov/go-openai"
)

const danishInstruction = "You are speaking Danish (dansk). Pronounce the " +
	"Danish text with authentic Danish phonetics. Speak slowly and clearly " +
	"for language learners."

// SynthesizerConfig holds OpenAI TTS settings for the fallback voice.
type SynthesizerConfig struct {
	APIKey string
	Model  string  // "tts-1", "tts-1-hd", or "gpt-4o-mini-tts"
	Voice  string  // "alloy", "echo", "nova", ...
	Speed  float64 // 0.25 to 4.0
}

// DefaultSynthesizerConfig returns the default TTS settings.
func DefaultSynthesizerConfig() *SynthesizerConfig {
	return &SynthesizerConfig{
		Model: "gpt-4o-mini-tts",
		Voice: "alloy",
		Speed: 0.9,
	}
}

// Synthesizer generates fallback pronunciation audio via OpenAI TTS for
// words the dictionary has no recording of.
type Synthesizer struct {
	client *openai.Client
	config *SynthesizerConfig
}

// NewSynthesizer creates a synthesizer. The API key is required.
func NewSynthesizer(config *SynthesizerConfig) (*Synthesizer, error) {
	if config == nil {
		config = DefaultSynthesizerConfig()
	}
	if config.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required for TTS fallback")
	}
	return &Synthesizer{
		client: openai.NewClient(config.APIKey),
		config: config,
	}, nil
}

// Synthesize generates MP3 audio for word and writes it to outputFile.
func (s *Synthesizer) Synthesize(ctx context.Context, word, outputFile string) error {
	req := openai.CreateSpeechRequest{
		Model:          openai.SpeechModel(s.config.Model),
		Input:          word,
		Voice:          openai.SpeechVoice(s.config.Voice),
		Speed:          s.config.Speed,
		ResponseFormat: openai.SpeechResponseFormatMp3,
	}
	if s.config.Model == "gpt-4o-mini-tts" {
		req.Instructions = danishInstruction
	}

	response, err := s.client.CreateSpeech(ctx, req)
	if err != nil {
		return fmt.Errorf("OpenAI TTS API error: %w", err)
	}
	defer response.Close()

	out, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("failed to create audio file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, response); err != nil {
		return fmt.Errorf("failed to write audio file: %w", err)
	}
	return nil
}
