// internal/nlp/loader.go
package nlp

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/xeipuuv/gojsonschema"
)

// intentsDocument is the on-disk shape of configs/intents.json.
type intentsDocument struct {
	Intents []Definition `json:"intents"`
}

// intentsSchema validates the intents document before decoding. Sample lists
// live under flat "samples_<lang>" keys, so they are covered by
// patternProperties.
var intentsSchema = map[string]interface{}{
	"type":     "object",
	"required": []string{"intents"},
	"properties": map[string]interface{}{
		"intents": map[string]interface{}{
			"type": "array",
			"items": map[string]interface{}{
				"type":     "object",
				"required": []string{"name"},
				"properties": map[string]interface{}{
					"name": map[string]interface{}{
						"type":      "string",
						"minLength": 1,
					},
				},
				"patternProperties": map[string]interface{}{
					"^samples_[a-z]{2}$": map[string]interface{}{
						"type":  "array",
						"items": map[string]interface{}{"type": "string"},
					},
				},
			},
		},
	},
}

// Load reads and validates the intent table from a JSON file. Callers are
// expected to fall back to EmptyTable() on error so intent parsing degrades
// to no-match instead of failing the process.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read intents file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates an intents document.
func Parse(data []byte) (*Table, error) {
	schemaLoader := gojsonschema.NewGoLoader(intentsSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, fmt.Errorf("validate intents document: %w", err)
	}
	if !result.Valid() {
		var first string
		if errs := result.Errors(); len(errs) > 0 {
			first = errs[0].String()
		}
		return nil, fmt.Errorf("intents document invalid: %s", first)
	}

	var doc intentsDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode intents document: %w", err)
	}

	return NewTable(doc.Intents)
}
