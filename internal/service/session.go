package service

import (
	"context"
	"fmt"

	"github.com/snoopapp/snoop-client/internal/logger"
	"github.com/snoopapp/snoop-client/internal/model"
)

// SessionManager owns the authentication state machine and the
// persisted token. It is driven from a single goroutine (the UI event
// loop) and takes no locks.
type SessionManager struct {
	gateway      model.Gateway
	store        model.SessionStore
	inspector    model.TokenInspector
	logger       *logger.Logger
	state        model.State
	pendingEmail string
	current      *model.Session
}

// NewSessionManager creates a SessionManager in the Anonymous state.
func NewSessionManager(
	gateway model.Gateway,
	store model.SessionStore,
	inspector model.TokenInspector,
	logger *logger.Logger,
) *SessionManager {
	return &SessionManager{
		gateway:   gateway,
		store:     store,
		inspector: inspector,
		logger:    logger,
		state:     model.StateAnonymous,
	}
}

// State returns the current authentication state.
func (m *SessionManager) State() model.State {
	return m.state
}

// Current returns the active session or ErrNoSession.
func (m *SessionManager) Current() (*model.Session, error) {
	if m.current == nil {
		return nil, model.ErrNoSession
	}
	return m.current, nil
}

// Login exchanges credentials for a token, fetches the user snapshot,
// persists the token and transitions to Authenticated. Gateway
// rejections surface as *model.AuthError with the server detail.
func (m *SessionManager) Login(ctx context.Context, email, password string) (*model.Session, error) {
	m.logger.Debug("Session manager: logging in", "email", email)

	token, err := m.gateway.Login(ctx, email, password)
	if err != nil {
		m.logger.Info("Session manager: login rejected",
			"email", email,
			"error", err.Error())
		return nil, err
	}

	return m.establish(ctx, token, email)
}

// Register submits a new-account request and transitions to
// AwaitingVerification bound to the email.
func (m *SessionManager) Register(ctx context.Context, name, email, password string) (model.PendingVerification, error) {
	m.logger.Debug("Session manager: registering", "email", email)
	m.state = model.StateRegistering

	if _, err := m.gateway.Register(ctx, name, email, password); err != nil {
		m.logger.Info("Session manager: registration rejected",
			"email", email,
			"error", err.Error())
		m.state = model.StateAnonymous
		return model.PendingVerification{}, err
	}

	m.state = model.StateAwaitingVerification
	m.pendingEmail = email
	m.logger.Info("Session manager: awaiting verification", "email", email)

	return model.PendingVerification{Email: email}, nil
}

// Verify submits the one-time code for the registration in progress.
// It is only reachable from AwaitingVerification for the same email;
// on success it behaves exactly like Login's success path.
func (m *SessionManager) Verify(ctx context.Context, email, code string) (*model.Session, error) {
	if m.state != model.StateAwaitingVerification || m.pendingEmail != email {
		return nil, fmt.Errorf("verify requires a prior registration for %s: %w", email, model.ErrInvalidTransition)
	}

	m.logger.Debug("Session manager: verifying", "email", email)

	token, err := m.gateway.Verify(ctx, email, code)
	if err != nil {
		m.logger.Info("Session manager: verification rejected",
			"email", email,
			"error", err.Error())
		return nil, err
	}

	m.pendingEmail = ""

	return m.establish(ctx, token, email)
}

// Restore revalidates a persisted token at startup. Any failure,
// network or rejection, silently downgrades to Anonymous: the stored
// token is discarded and (nil, nil) is returned, indistinguishable from
// never having been logged in.
func (m *SessionManager) Restore(ctx context.Context) (*model.Session, error) {
	token, err := m.store.Get(ctx)
	if err != nil {
		m.state = model.StateAnonymous
		return nil, nil
	}

	m.state = model.StateRestoring
	m.logger.Debug("Session manager: restoring persisted session")

	if m.inspector.Expired(token) {
		m.logger.Info("Session manager: persisted token already expired, discarding")
		m.discard(ctx)
		return nil, nil
	}

	user, err := m.gateway.Me(ctx, token)
	if err != nil {
		m.logger.Info("Session manager: session revalidation failed, discarding",
			"error", err.Error())
		m.discard(ctx)
		return nil, nil
	}

	m.current = &model.Session{Token: token, User: user}
	m.state = model.StateAuthenticated
	m.logger.Info("Session manager: session restored", "email", user.Email)

	return m.current, nil
}

// Logout discards the persisted token and transitions to Anonymous.
// It always succeeds.
func (m *SessionManager) Logout(ctx context.Context) {
	if err := m.store.Clear(ctx); err != nil {
		m.logger.Error("Session manager: failed to clear token store",
			"error", err.Error())
	}

	m.current = nil
	m.pendingEmail = ""
	m.state = model.StateAnonymous
	m.logger.Info("Session manager: logged out")
}

// establish completes the shared success path of Login and Verify:
// persist the token, fetch the user snapshot, enter Authenticated.
func (m *SessionManager) establish(ctx context.Context, token, email string) (*model.Session, error) {
	if err := m.store.Set(ctx, token); err != nil {
		m.logger.Error("Session manager: failed to persist token",
			"email", email,
			"error", err.Error())
		return nil, fmt.Errorf("failed to persist token: %w", err)
	}

	user, err := m.gateway.Me(ctx, token)
	if err != nil {
		// Token was issued but the identity check failed; treat as a
		// failed login rather than keeping a half-open session around.
		m.discard(ctx)
		return nil, fmt.Errorf("failed to fetch user for new session: %w", err)
	}

	m.current = &model.Session{Token: token, User: user}
	m.state = model.StateAuthenticated
	m.logger.Info("Session manager: authenticated", "email", user.Email)

	return m.current, nil
}

func (m *SessionManager) discard(ctx context.Context) {
	if err := m.store.Clear(ctx); err != nil {
		m.logger.Error("Session manager: failed to clear token store",
			"error", err.Error())
	}
	m.current = nil
	m.state = model.StateAnonymous
}
