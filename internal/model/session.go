package model

import "context"

// State enumerates the authentication states of the client.
type State int

const (
	// StateAnonymous means no accepted token exists.
	StateAnonymous State = iota
	// StateRestoring means a persisted token is being revalidated.
	StateRestoring
	// StateRegistering means a new-account request is in flight.
	StateRegistering
	// StateAwaitingVerification means registration succeeded and the
	// one-time email code has not been submitted yet.
	StateAwaitingVerification
	// StateAuthenticated means the Gateway accepted a token.
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateAnonymous:
		return "anonymous"
	case StateRestoring:
		return "restoring"
	case StateRegistering:
		return "registering"
	case StateAwaitingVerification:
		return "awaiting_verification"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Session is the authenticated binding between the client and a user,
// represented by a bearer token.
type Session struct {
	Token string
	User  User
}

// PendingVerification is the outcome of a successful registration:
// the account exists but the email code has not been confirmed.
type PendingVerification struct {
	Email string
}

// SessionStore persists the single session token. Get returns
// ErrNoSession when nothing is stored.
type SessionStore interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

// TokenInspector peeks at a stored bearer token without verifying it.
// Expired reports true only when the token is positively known to be
// past its expiry; opaque tokens report false.
type TokenInspector interface {
	Expired(token string) bool
}
