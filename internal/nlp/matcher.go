// internal/nlp/matcher.go
package nlp

import "strings"

// Match identifies an intent by simple substring matching: the input is
// case-folded and each definition's sample phrases for the given language are
// tested in declaration order. The first definition with any sample occurring
// in the input wins. Definitions with no samples for the language are skipped
// entirely. Returns IntentNone when nothing matches.
//
// Matching is case-insensitive but deliberately not whitespace- or
// punctuation-normalized.
func (t *Table) Match(text, language string) string {
	if text == "" {
		return IntentNone
	}

	textLower := strings.ToLower(text)

	for _, def := range t.definitions {
		samples, ok := def.Samples[language]
		if !ok {
			continue
		}
		for _, sample := range samples {
			if sample == "" {
				continue
			}
			if strings.Contains(textLower, strings.ToLower(sample)) {
				return def.Name
			}
		}
	}

	return IntentNone
}
