// internal/translate/simulator.go
package translate

import (
	"context"
	"fmt"
	"strings"

	"github.com/agentwolf27/AI-Powered-Immigration-Navigator/internal/common/logger"
)

// Simulator is the deterministic stand-in translation backend. It returns a
// couple of hardcoded translations for demonstration phrases and otherwise
// annotates the text with the requested target language. It never fails.
type Simulator struct {
	logger logger.Logger
}

// NewSimulator builds the simulated translator.
func NewSimulator(log logger.Logger) *Simulator {
	return &Simulator{logger: log.WithFields(map[string]interface{}{"component": "translate-simulator"})}
}

func (s *Simulator) Translate(_ context.Context, text, targetLang, sourceLang string) (string, error) {
	s.logger.Debug("simulating translation", map[string]interface{}{
		"sourceLang": sourceLang,
		"targetLang": targetLang,
		"chars":      len(text),
	})

	switch {
	case strings.EqualFold(text, "hello") && targetLang == "es":
		return "hola (translated)", nil
	case strings.EqualFold(text, "hola") && targetLang == "en":
		return "hello (translated)", nil
	}
	return fmt.Sprintf("%s (simulated translation to %s)", text, targetLang), nil
}
