// internal/immigration/knowledge.go
package immigration

import (
	"encoding/json"
	"fmt"
	"os"
)

// DocumentDetail describes one immigration form or supporting document.
type DocumentDetail struct {
	Name    string `json:"name"`
	Purpose string `json:"purpose"`
	Link    string `json:"link,omitempty"`
	Notes   string `json:"notes,omitempty"`
}

// Knowledge holds the static visa reference tables: country to visa types,
// visa type to ordered procedural stages, and (visa type, stage) to required
// documents. Read-only after construction and shared across requests.
type Knowledge struct {
	visaTypes       map[string][]string
	visaStages      map[string][]string
	requiredDocs    map[string]map[string][]string
	documentDetails map[string]DocumentDetail
}

// knowledgeDocument is the on-disk shape of configs/knowledge.json.
type knowledgeDocument struct {
	VisaTypes         map[string][]string            `json:"visa_types"`
	VisaStages        map[string][]string            `json:"visa_stages"`
	RequiredDocuments map[string]map[string][]string `json:"required_documents"`
	DocumentDetails   map[string]DocumentDetail      `json:"document_details"`
}

// Load reads the knowledge tables from a JSON file.
func Load(path string) (*Knowledge, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read knowledge file: %w", err)
	}

	var doc knowledgeDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode knowledge file: %w", err)
	}

	if len(doc.VisaStages) == 0 {
		return nil, fmt.Errorf("knowledge file has no visa stages")
	}

	return &Knowledge{
		visaTypes:       doc.VisaTypes,
		visaStages:      doc.VisaStages,
		requiredDocs:    doc.RequiredDocuments,
		documentDetails: doc.DocumentDetails,
	}, nil
}

// Default returns the built-in reference tables, used when no knowledge file
// is configured or it fails to load.
func Default() *Knowledge {
	return &Knowledge{
		visaTypes: map[string][]string{
			"US": {"H-1B", "F-1", "B-2"},
			"CA": {"Work Permit", "Student Visa", "Visitor Visa"},
			"UK": {"Tier 2 (General)", "Tier 4 (Student)", "Standard Visitor Visa"},
		},
		visaStages: map[string][]string{
			"H-1B":                  {"Petition Filing", "USCIS Processing", "Interview", "Visa Stamping"},
			"F-1":                   {"I-20 Application", "SEVIS Fee Payment", "Visa Interview", "Port of Entry"},
			"B-2":                   {"Online Application (DS-160)", "Fee Payment", "Visa Interview"},
			"Work Permit":           {"LMIA Application (if applicable)", "Work Permit Application", "Biometrics", "Approval"},
			"Student Visa":          {"Letter of Acceptance", "Study Permit Application", "Biometrics", "Approval"},
			"Visitor Visa":          {"Online Application", "Fee Payment", "Biometrics (if required)", "Interview (if required)"},
			"Tier 2 (General)":      {"Certificate of Sponsorship", "Online Application", "TB Test (if applicable)", "Biometrics", "Visa Decision"},
			"Tier 4 (Student)":      {"Confirmation of Acceptance for Studies (CAS)", "Online Application", "TB Test (if applicable)", "Biometrics", "Visa Decision"},
			"Standard Visitor Visa": {"Online Application", "TB Test (if applicable)", "Biometrics", "Visa Decision"},
		},
		requiredDocs: map[string]map[string][]string{
			"H-1B": {
				"Petition Filing": {"Form I-129", "Passport Copy", "Educational Certificates", "Experience Letters", "LCA Certificate"},
				"Interview":       {"Interview Appointment Letter", "DS-160 Confirmation", "Passport", "I-797 Approval Notice"},
			},
			"F-1": {
				"I-20 Application": {"Passport Copy", "Proof of Funds", "Academic Transcripts"},
				"Visa Interview":   {"I-20 Form", "SEVIS Fee Receipt", "DS-160 Confirmation", "Passport", "Financial Documents"},
			},
		},
		documentDetails: map[string]DocumentDetail{
			"Form I-129": {
				Name:    "Form I-129, Petition for a Nonimmigrant Worker",
				Purpose: "To petition U.S. Citizenship and Immigration Services (USCIS) for a foreign national to come to the United States temporarily to perform services or labor, or to receive training.",
				Link:    "https://www.uscis.gov/i-129",
			},
			"Passport Copy": {
				Name:    "Copy of Passport",
				Purpose: "To verify identity and nationality.",
				Notes:   "Ensure passport is valid for at least 6 months beyond intended stay.",
			},
			"DS-160 Confirmation": {
				Name:    "DS-160 Confirmation Page",
				Purpose: "Confirmation page of the submitted Online Nonimmigrant Visa Application.",
				Link:    "https://ceac.state.gov/genniv/",
			},
		},
	}
}
