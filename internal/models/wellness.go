// internal/models/wellness.go
package models

// WellnessRequest is the body of POST /wellness. As with ChatRequest, Text is
// a pointer because an empty string is a legitimate check-in while a missing
// field is a client error.
type WellnessRequest struct {
	Text      *string `json:"text"`
	Language  string  `json:"language"`
	SessionID string  `json:"session_id,omitempty"`
}

// WellnessResponse carries the bot's reply for both the POST conversation
// round and the GET greeting. Turns is only populated when the caller
// supplied a session id.
type WellnessResponse struct {
	Response string `json:"response"`
	Turns    int    `json:"turns,omitempty"`
}
