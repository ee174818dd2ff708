package session

import (
	"context"

	"wardrobe-planner/internal/model"
	"wardrobe-planner/internal/wardrobeapi"
)

// State is the authentication state of the holder.
type State string

const (
	StateAnonymous      State = "anonymous"
	StateAuthenticating State = "authenticating"
	StateAuthenticated  State = "authenticated"
	// StateInvalid is transient: it is reported to observers right before the
	// holder falls back to anonymous.
	StateInvalid State = "invalid"
)

// Snapshot is a consistent view of the session at one instant.
type Snapshot struct {
	State     State
	User      *model.User
	Token     string
	LastError error
}

// Loading reports whether an authentication attempt is in flight.
func (s Snapshot) Loading() bool { return s.State == StateAuthenticating }

// Identity is the slice of the backend the session talks to.
type Identity interface {
	Login(ctx context.Context, creds wardrobeapi.Credentials) (*wardrobeapi.TokenResponse, error)
	Register(ctx context.Context, reg wardrobeapi.Registration) (*wardrobeapi.RegisterResponse, error)
	Me(ctx context.Context, token string) (*model.User, error)
}
