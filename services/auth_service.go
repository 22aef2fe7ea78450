package services

import (
	"context"
	stderrors "errors"
	"fmt"
	"group-talk/contract"
	"group-talk/errors"
	"log/slog"
	"sync"
)

type IAuthService interface {
	Register(ctx context.Context, username, password string) error
	Login(ctx context.Context, username, password string) (Token, error)
	Logout(ctx context.Context) error
	Resume(ctx context.Context) (string, bool)
	DeviceToken() (Token, error)
}

// Token is the device token every remote call carries.
type Token string

func (t Token) String() string {
	return string(t)
}

// AuthService is the device side of authentication: it talks to the account
// directory and keeps the device session.
type AuthService struct {
	log      *slog.Logger
	accounts contract.IAccounts
	sessions contract.ISessionStore

	mu       sync.Mutex
	onLogout []func()
}

func NewAuthService(log *slog.Logger, accounts contract.IAccounts, sessions contract.ISessionStore) *AuthService {
	return &AuthService{log: log, accounts: accounts, sessions: sessions}
}

// OnLogout registers a hook run at logout before local data is wiped, such as
// leaving the push topic.
func (s *AuthService) OnLogout(hook func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onLogout = append(s.onLogout, hook)
}

func (s *AuthService) Register(ctx context.Context, username, password string) error {
	return s.accounts.Register(ctx, username, password)
}

// Login opens the device session with the token the directory issued.
func (s *AuthService) Login(ctx context.Context, username, password string) (Token, error) {
	token, err := s.accounts.Login(ctx, username, password)
	if err != nil {
		return "", err
	}
	if err = s.sessions.Save(username, token); err != nil {
		return "", fmt.Errorf("failed to save session: %w", err)
	}
	s.log.Info("User logged in", "username", username)
	return Token(token), nil
}

// Logout revokes the device token, runs the logout hooks, clears the session
// and wipes every local data of the application.
func (s *AuthService) Logout(ctx context.Context) error {
	username, err := s.sessions.Current()
	switch {
	case err == nil:
		s.revoke(ctx, username)
	case !errors.IsNoSession(err):
		return err
	}

	s.mu.Lock()
	hooks := s.onLogout
	s.mu.Unlock()
	for _, hook := range hooks {
		hook()
	}

	if err = s.sessions.Clear(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	if err = s.sessions.Wipe(); err != nil {
		return fmt.Errorf("failed to wipe local data: %w", err)
	}
	s.log.Info("User logged out", "username", username)
	return nil
}

// revoke is best effort: an unreachable directory must not keep the user logged in.
func (s *AuthService) revoke(ctx context.Context, username string) {
	token, err := s.sessions.Token()
	if err == nil {
		err = s.accounts.Revoke(ctx, token)
	}
	if err != nil {
		s.log.Warn("Failed to revoke device token", "username", username, "error", err)
	}
}

// Resume tells whether a session survived the last run, in which case the
// login screen is skipped. The device token is refreshed on the way; a token
// the directory refuses ends the session. An unreachable directory does not.
func (s *AuthService) Resume(ctx context.Context) (string, bool) {
	username, err := s.sessions.Current()
	if err != nil {
		if !errors.IsNoSession(err) {
			s.log.Error("Failed to read session", "error", err)
		}
		return "", false
	}
	token, err := s.sessions.Token()
	if err != nil {
		s.log.Error("Failed to read device token", "username", username, "error", err)
		return "", false
	}

	refreshed, err := s.accounts.Refresh(ctx, token)
	switch {
	case stderrors.Is(err, errors.ErrAuth):
		s.log.Info("Session expired, login required", "username", username)
		if err = s.sessions.Clear(); err != nil {
			s.log.Error("Failed to clear session", "error", err)
		}
		return "", false
	case err != nil:
		s.log.Warn("Could not refresh device token, keeping session", "username", username, "error", err)
		return username, true
	}
	if err = s.sessions.Save(username, refreshed); err != nil {
		s.log.Error("Failed to save refreshed token", "username", username, "error", err)
	}
	return username, true
}

// DeviceToken returns the token of the current session.
func (s *AuthService) DeviceToken() (Token, error) {
	token, err := s.sessions.Token()
	if err != nil {
		return "", err
	}
	return Token(token), nil
}
