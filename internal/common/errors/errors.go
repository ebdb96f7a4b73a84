// Package errors provides standardized error handling for the navigator's
// HTTP boundary and loaders.
package errors

import (
	"fmt"
	"net/http"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeMissingField  ErrorCode = "MISSING_FIELD"
	ErrCodeInvalidJSON   ErrorCode = "INVALID_JSON"
	ErrCodeNotFound      ErrorCode = "NOT_FOUND"

	ErrCodeIntentsLoadFailed   ErrorCode = "INTENTS_LOAD_FAILED"
	ErrCodeKnowledgeLoadFailed ErrorCode = "KNOWLEDGE_LOAD_FAILED"

	ErrCodeTranslationFailed   ErrorCode = "TRANSLATION_FAILED"
	ErrCodeSessionStoreFailed  ErrorCode = "SESSION_STORE_FAILED"
	ErrCodeSpeechRecognition   ErrorCode = "SPEECH_RECOGNITION_FAILED"
	ErrCodeSpeechSynthesis     ErrorCode = "SPEECH_SYNTHESIS_FAILED"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// ==========================
// 2. Error Constructors
// ==========================

// NewMissingFieldError creates a client error for an absent required field.
func NewMissingFieldError(field string) *StandardError {
	return &StandardError{
		Code:      ErrCodeMissingField,
		Message:   fmt.Sprintf("Missing '%s' field in JSON data.", field),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidJSONError creates a client error for an unparseable request body.
func NewInvalidJSONError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidJSON,
		Message:   "No JSON data provided.",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewNotFoundError creates a client error for a missing resource.
func NewNotFoundError(resource string) *StandardError {
	return &StandardError{
		Code:      ErrCodeNotFound,
		Message:   fmt.Sprintf("%s not found", resource),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewIntentsLoadFailedError wraps an intent-table load failure. The service
// keeps running with an empty table, so this is informational only.
func NewIntentsLoadFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeIntentsLoadFailed,
		Message:   "Intents data could not be loaded",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewKnowledgeLoadFailedError wraps a knowledge-table load failure.
func NewKnowledgeLoadFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeKnowledgeLoadFailed,
		Message:   "Visa knowledge tables could not be loaded",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewTranslationFailedError wraps a translation-service failure. The router
// recovers by returning the untranslated pivot-language text.
func NewTranslationFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeTranslationFailed,
		Message:   "Translation service call failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewSessionStoreFailedError wraps a session-store failure.
func NewSessionStoreFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeSessionStoreFailed,
		Message:   "Session store operation failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewSpeechRecognitionError wraps a transcription backend failure.
func NewSpeechRecognitionError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeSpeechRecognition,
		Message:   "Speech transcription failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewSpeechSynthesisError wraps a synthesis backend failure.
func NewSpeechSynthesisError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeSpeechSynthesis,
		Message:   "Speech synthesis failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 3. HTTP Integration
// ==========================

// HTTPStatus maps an error code to the status the boundary should return.
func HTTPStatus(code ErrorCode) int {
	switch code {
	case ErrCodeMissingField, ErrCodeInvalidJSON:
		return http.StatusBadRequest
	case ErrCodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// GetErrorCategory groups codes for logging and metrics.
func GetErrorCategory(code ErrorCode) string {
	switch code {
	case ErrCodeMissingField, ErrCodeInvalidJSON, ErrCodeNotFound:
		return "client"
	case ErrCodeIntentsLoadFailed, ErrCodeKnowledgeLoadFailed:
		return "startup"
	case ErrCodeTranslationFailed, ErrCodeSessionStoreFailed,
		ErrCodeSpeechRecognition, ErrCodeSpeechSynthesis:
		return "dependency"
	default:
		return "internal"
	}
}

// IsRetryable reports whether a retry could plausibly succeed.
func IsRetryable(err error) bool {
	if stdErr, ok := err.(*StandardError); ok {
		return stdErr.Retryable
	}
	return false
}
