// internal/models/chat.go
package models

// ChatRequest is the body of POST /chat. Text is a pointer so an absent field
// can be told apart from an explicitly empty string: absence is a client
// error, emptiness is a valid utterance.
type ChatRequest struct {
	Text     *string `json:"text"`
	Language string  `json:"language"`
}

// ChatResponse carries the routed reply and the detected intent name, with
// the no-match case rendered as "unknown".
type ChatResponse struct {
	Response string `json:"response"`
	Intent   string `json:"intent"`
}
