// internal/models/immigration.go
package models

// ImmigrationRequest is the body of POST /immigration. Country, VisaType and
// Stage are all required; Language defaults to the pivot when absent.
type ImmigrationRequest struct {
	Country  string `json:"country"`
	VisaType string `json:"visa_type"`
	Stage    string `json:"stage"`
	Language string `json:"language"`
}

// ImmigrationResponse echoes the request coordinates alongside the remaining
// stages and the current stage's document list. NextSteps carries the
// invalid-stage marker as its only element when the stage does not resolve.
type ImmigrationResponse struct {
	Country           string   `json:"country"`
	VisaType          string   `json:"visa_type"`
	CurrentStage      string   `json:"current_stage"`
	NextSteps         []string `json:"next_steps"`
	RequiredDocuments []string `json:"required_documents_for_current_stage"`
}

// VisaTypesResponse is the body of GET /immigration/visa-types.
type VisaTypesResponse struct {
	Country   string   `json:"country"`
	VisaTypes []string `json:"visa_types"`
}

// DocumentDetailResponse is the body of GET /immigration/documents/:name.
type DocumentDetailResponse struct {
	Name    string `json:"name"`
	Purpose string `json:"purpose"`
	Link    string `json:"link"`
	Notes   string `json:"notes"`
}
