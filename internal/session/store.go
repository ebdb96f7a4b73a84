// internal/session/store.go
package session

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a session id has no stored state.
var ErrNotFound = errors.New("session not found")

// State is the per-exchange memory kept outside the conversational core. The
// core itself is stateless; this only lets the boundary report how far a
// wellness exchange has progressed when the caller supplies a session id.
type State struct {
	SessionID string    `json:"session_id"`
	Turns     int       `json:"turns"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Store persists wellness exchange state, keyed by a caller-supplied id.
type Store interface {
	Get(ctx context.Context, id string) (*State, error)
	Save(ctx context.Context, s *State) error
	Delete(ctx context.Context, id string) error
}
