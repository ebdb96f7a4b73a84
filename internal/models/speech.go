// internal/models/speech.go
package models

// TranscribeRequest is the body of POST /speech/transcribe. Audio is
// base64-encoded by the JSON codec.
type TranscribeRequest struct {
	Audio    []byte `json:"audio"`
	Language string `json:"language"`
}

// TranscribeResponse carries the recognized text.
type TranscribeResponse struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}

// SynthesizeRequest is the body of POST /speech/synthesize.
type SynthesizeRequest struct {
	Text     *string `json:"text"`
	Language string  `json:"language"`
}

// SynthesizeResponse carries the generated audio, base64-encoded on the wire.
type SynthesizeResponse struct {
	Audio    []byte `json:"audio"`
	Language string `json:"language"`
}
