// Package audio places pronunciation MP3s into the flashcard media
// directory. The primary source is the dictionary's own recording,
// downloaded over HTTP; an optional OpenAI TTS fallback can fill the gap
// for words the dictionary has no audio for.
package audio
