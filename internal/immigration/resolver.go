// internal/immigration/resolver.go
package immigration

import "strings"

// InvalidStageMarker is the in-band sentinel returned by RemainingStages when
// the current stage cannot be located. Kept verbatim for contract
// compatibility with existing clients; callers must check for it.
const InvalidStageMarker = "Invalid current stage or no further stages defined."

// VisaTypes returns the visa types offered for a country code. The code is
// upper-cased before lookup. Unknown countries yield an empty slice.
func (k *Knowledge) VisaTypes(country string) []string {
	return k.visaTypes[strings.ToUpper(country)]
}

// Stages returns the full ordered stage list for a visa type, or an empty
// slice when the visa type is unknown.
func (k *Knowledge) Stages(visaType string) []string {
	return k.visaStages[visaType]
}

// RemainingStages returns every stage strictly after currentStage, in
// original order. The current stage is located by exact, case-sensitive
// match. When it is the last stage the result is empty, which is not an
// error. When it cannot be found at all (unknown stage or unknown visa type)
// the result is a single-element slice holding InvalidStageMarker.
func (k *Knowledge) RemainingStages(visaType, currentStage string) []string {
	stages := k.visaStages[visaType]
	for i, stage := range stages {
		if stage == currentStage {
			remaining := make([]string, len(stages)-i-1)
			copy(remaining, stages[i+1:])
			return remaining
		}
	}
	return []string{InvalidStageMarker}
}

// RequiredDocuments returns the documents required at a given stage of a visa
// process. Misses on either key yield an empty slice, with no sentinel.
func (k *Knowledge) RequiredDocuments(visaType, stage string) []string {
	byStage, ok := k.requiredDocs[visaType]
	if !ok {
		return []string{}
	}
	docs, ok := byStage[stage]
	if !ok {
		return []string{}
	}
	out := make([]string, len(docs))
	copy(out, docs)
	return out
}

// DocumentDetails returns the detail record for a named document. The second
// return reports whether the document is known.
func (k *Knowledge) DocumentDetails(name string) (DocumentDetail, bool) {
	detail, ok := k.documentDetails[name]
	return detail, ok
}
