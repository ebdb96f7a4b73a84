// internal/speech/speech.go
package speech

import "context"

// Recognizer converts audio to text. Real deployments plug in an ASR backend
// (language-specific or multilingual); the navigator only depends on this
// contract.
type Recognizer interface {
	Transcribe(ctx context.Context, audio []byte, language string) (string, error)
}

// Synthesizer converts text to audio in the requested language.
type Synthesizer interface {
	Synthesize(ctx context.Context, text, language string) ([]byte, error)
}
