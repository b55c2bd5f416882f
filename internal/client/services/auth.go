package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/scentid/scentid-cli/internal/client/api"
	"github.com/scentid/scentid-cli/internal/client/models"
	"github.com/scentid/scentid-cli/internal/client/session"
	"github.com/scentid/scentid-cli/internal/logging"
)

// ErrValidation marks client-side input rejections; no network call has
// been made when it is returned.
var ErrValidation = errors.New("validation failed")

// minPasswordLen matches the backend's signup requirement.
const minPasswordLen = 6

// AuthState is the session lifecycle state. StateUnknown holds only between
// startup and the first Restore; protected views must not render during it.
type AuthState string

const (
	StateUnknown       AuthState = "unknown"
	StateAuthenticated AuthState = "authenticated"
	StateAnonymous     AuthState = "anonymous"
)

// AuthService drives the authentication session: restore on startup, login,
// signup and logout. It owns the User entity and guarantees that a non-nil
// User implies a token in the session store.
type AuthService struct {
	mu       sync.Mutex
	api      api.Client
	sessions *session.Store
	log      logging.Logger

	state AuthState
	user  *models.User
}

func NewAuthService(apiClient api.Client, sessions *session.Store, log logging.Logger) *AuthService {
	return &AuthService{
		api:      apiClient,
		sessions: sessions,
		log:      log,
		state:    StateUnknown,
	}
}

// State returns the current session state.
func (s *AuthService) State() AuthState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// User returns the current user, or nil when anonymous.
func (s *AuthService) User() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

func (s *AuthService) settle(state AuthState, user *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
	s.user = user
}

// Restore resolves the initial unknown state exactly once. With no persisted
// token it settles into anonymous without any network call; with one, the
// token is validated against /auth/me and any failure is treated as an
// expired token: the store is cleared and the session becomes anonymous.
func (s *AuthService) Restore(ctx context.Context) error {
	token, err := s.sessions.Get(ctx)
	if err != nil {
		s.settle(StateAnonymous, nil)
		return fmt.Errorf("failed to read persisted session: %w", err)
	}
	if token == "" {
		s.settle(StateAnonymous, nil)
		return nil
	}

	user, err := s.api.Me(ctx)
	if err != nil {
		s.log.Info(ctx, "stored session rejected, starting anonymous", "error", err)
		if err := s.sessions.Clear(ctx); err != nil {
			s.log.Error(ctx, "failed to clear rejected session", "error", err)
		}
		s.settle(StateAnonymous, nil)
		return nil
	}

	s.settle(StateAuthenticated, user)
	return nil
}

// Login authenticates against the backend and, on success, persists the
// returned token and sets the User. On failure the session stays anonymous
// and no partial state is left behind.
func (s *AuthService) Login(ctx context.Context, email, password string) error {
	if err := validateCredentials(email, password); err != nil {
		return err
	}

	resp, err := s.api.Login(ctx, email, password)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	return s.establish(ctx, resp)
}

// Signup creates an account; the contract is the same as Login.
func (s *AuthService) Signup(ctx context.Context, email, password, name string) error {
	if err := validateCredentials(email, password); err != nil {
		return err
	}

	resp, err := s.api.Signup(ctx, email, password, name)
	if err != nil {
		return fmt.Errorf("signup failed: %w", err)
	}

	return s.establish(ctx, resp)
}

// establish stores the token before exposing the User, so the
// "User set implies token present" invariant holds at every point.
func (s *AuthService) establish(ctx context.Context, resp *api.AuthResponse) error {
	if err := s.sessions.Set(ctx, resp.AccessToken); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}

	user := resp.User
	s.settle(StateAuthenticated, &user)
	return nil
}

// Logout clears the token and the User synchronously. No network call is
// made and the session is anonymous afterwards even if durable storage
// failed to update.
func (s *AuthService) Logout(ctx context.Context) {
	if err := s.sessions.Clear(ctx); err != nil {
		s.log.Error(ctx, "failed to clear session on logout", "error", err)
	}
	s.settle(StateAnonymous, nil)
}

// Invalidate drops the in-memory session after the gateway detected an
// authorization failure. The token has already been cleared by the gateway.
func (s *AuthService) Invalidate() {
	s.settle(StateAnonymous, nil)
}

func validateCredentials(email, password string) error {
	if !strings.Contains(email, "@") {
		return fmt.Errorf("%w: invalid email address", ErrValidation)
	}
	if len(password) < minPasswordLen {
		return fmt.Errorf("%w: password must be at least %d characters", ErrValidation, minPasswordLen)
	}
	return nil
}
