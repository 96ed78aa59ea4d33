package model

import "errors"

var (
	// ErrNoSession is returned when no token is persisted.
	ErrNoSession = errors.New("no persisted session")
	// ErrInvalidTransition is returned when an auth operation is not
	// allowed in the current state.
	ErrInvalidTransition = errors.New("invalid session state transition")
)

// AuthError is a credential, verification or registration failure.
// The message is server-supplied when the response was parsable.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

// NewAuthError creates an AuthError with the given message.
func NewAuthError(message string) *AuthError {
	return &AuthError{Message: message}
}

// ValidationError is a client-side precondition failure raised before
// any network call is made.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a ValidationError with the given message.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// RepositoryError is a habit CRUD failure.
type RepositoryError struct {
	Message string
	Err     error
}

func (e *RepositoryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *RepositoryError) Unwrap() error {
	return e.Err
}

// NewRepositoryError creates a RepositoryError wrapping err. Err may be nil.
func NewRepositoryError(message string, err error) *RepositoryError {
	return &RepositoryError{Message: message, Err: err}
}

// PartialFailure reports a secondary step failing after the primary
// resource was created. It is returned as a warning value alongside the
// successful result, never as the operation's error.
type PartialFailure struct {
	Message string
	Err     error
}

func (e *PartialFailure) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *PartialFailure) Unwrap() error {
	return e.Err
}
