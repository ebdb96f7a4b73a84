// internal/nlp/models.go
package nlp

import (
	"encoding/json"
	"fmt"
	"strings"
)

// IntentNone is the sentinel returned when no intent definition matches.
// The HTTP boundary renders it as "unknown".
const IntentNone = ""

// Canonical intent names shipped in configs/intents.json.
const (
	IntentGreet          = "greet"
	IntentMentalWellness = "ask_mental_wellness"
	IntentMentalHelp     = "get_help_mental"
	IntentVisaStatus     = "check_visa_status"
	IntentVisaTypes      = "ask_visa_types"
	IntentFarewell       = "farewell"
)

// Definition is one named intent with its per-language sample phrases.
// Absence of a language key means "no samples for that language", not an
// error.
type Definition struct {
	Name    string
	Samples map[string][]string
}

const samplePrefix = "samples_"

// UnmarshalJSON decodes the on-disk shape, where each language's samples live
// under a flat "samples_<lang>" key next to "name".
func (d *Definition) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	nameRaw, ok := raw["name"]
	if !ok {
		return fmt.Errorf("intent definition missing name")
	}
	if err := json.Unmarshal(nameRaw, &d.Name); err != nil {
		return fmt.Errorf("intent name: %w", err)
	}

	d.Samples = make(map[string][]string)
	for key, val := range raw {
		if !strings.HasPrefix(key, samplePrefix) {
			continue
		}
		lang := strings.TrimPrefix(key, samplePrefix)
		if lang == "" {
			continue
		}
		var samples []string
		if err := json.Unmarshal(val, &samples); err != nil {
			return fmt.Errorf("intent %q samples for %q: %w", d.Name, lang, err)
		}
		d.Samples[lang] = samples
	}
	return nil
}

// Table is an ordered, immutable set of intent definitions. Declaration order
// is the tie-break: when two intents' samples both occur in an input, the one
// earlier in the table wins.
type Table struct {
	definitions []Definition
}

// NewTable builds a Table, enforcing that every definition has a non-empty,
// unique name.
func NewTable(definitions []Definition) (*Table, error) {
	seen := make(map[string]bool, len(definitions))
	for _, def := range definitions {
		if def.Name == "" {
			return nil, fmt.Errorf("intent definition with empty name")
		}
		if seen[def.Name] {
			return nil, fmt.Errorf("duplicate intent name: %q", def.Name)
		}
		seen[def.Name] = true
	}
	return &Table{definitions: definitions}, nil
}

// EmptyTable returns a table that matches nothing. Used as the fallback when
// the intents file cannot be loaded, so the service degrades instead of
// crashing.
func EmptyTable() *Table {
	return &Table{}
}

// Len returns the number of intent definitions.
func (t *Table) Len() int {
	return len(t.definitions)
}

// Definitions returns the definitions in declaration order.
func (t *Table) Definitions() []Definition {
	return t.definitions
}
