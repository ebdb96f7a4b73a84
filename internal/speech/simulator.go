// internal/speech/simulator.go
package speech

import (
	"context"
	"fmt"

	"github.com/agentwolf27/AI-Powered-Immigration-Navigator/internal/common/logger"
)

// Simulator implements both Recognizer and Synthesizer with deterministic
// placeholder output, standing in for real ASR/TTS models.
type Simulator struct {
	logger logger.Logger
}

// NewSimulator builds the simulated speech pipeline.
func NewSimulator(log logger.Logger) *Simulator {
	return &Simulator{logger: log.WithFields(map[string]interface{}{"component": "speech-simulator"})}
}

func (s *Simulator) Transcribe(_ context.Context, audio []byte, language string) (string, error) {
	s.logger.Debug("simulating speech-to-text", map[string]interface{}{
		"language":   language,
		"audioBytes": len(audio),
	})
	return fmt.Sprintf("Transcribed text for %s (simulated)", language), nil
}

func (s *Simulator) Synthesize(_ context.Context, text, language string) ([]byte, error) {
	s.logger.Debug("simulating text-to-speech", map[string]interface{}{
		"language": language,
		"chars":    len(text),
	})
	return []byte("simulated_audio_bytes_for_" + text), nil
}
