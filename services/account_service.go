package services

import (
	"context"
	"fmt"
	"group-talk/auth"
	"group-talk/contract"
	"group-talk/errors"
	"group-talk/repositories"
	"log/slog"
)

// AccountService owns the accounts of the shared store. The daemon serves it
// to every device; a standalone client uses it in process.
type AccountService struct {
	log      *slog.Logger
	accounts contract.IAccountRepository
	signer   auth.TokenSigner
}

func NewAccountService(log *slog.Logger, accounts contract.IAccountRepository, signer auth.TokenSigner) *AccountService {
	return &AccountService{log: log, accounts: accounts, signer: signer}
}

func (s *AccountService) Register(_ context.Context, username, password string) error {
	// Business rules are checked before any expensive cryptographic operation
	if err := auth.ValidateCredentials(auth.Credentials{Username: username, Password: password}); err != nil {
		return err
	}
	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hashing failed: %w", err)
	}
	if err = s.accounts.CreateAccount(username, hashedPassword); err != nil {
		return err
	}
	s.log.Info("Account registered", "username", username)
	return nil
}

// Login checks the credentials and issues a device token stored on the account.
func (s *AccountService) Login(_ context.Context, username, password string) (string, error) {
	account, err := s.accounts.GetAccount(username)
	if repositories.IsNotFound(err) {
		// Same error as a wrong password to prevent user enumeration
		return "", errors.ErrInvalidCredentials
	}
	if err != nil {
		return "", errors.Remote("get account", err)
	}
	match, err := auth.ComparePassword(password, account.PasswordHash)
	if err != nil || !match {
		return "", errors.ErrInvalidCredentials
	}
	return s.issue(username)
}

// Refresh trades a valid, non revoked token for a fresh one.
func (s *AccountService) Refresh(_ context.Context, token string) (string, error) {
	username, err := s.holder(token)
	if err != nil {
		return "", err
	}
	return s.issue(username)
}

// Revoke forgets the token stored on its account. The device then no longer
// receives pushes nor refreshes its session.
func (s *AccountService) Revoke(_ context.Context, token string) error {
	username, err := s.holder(token)
	if err != nil {
		return err
	}
	if err = s.accounts.UpdatePushToken(username, ""); err != nil {
		return errors.Remote("update push token", err)
	}
	s.log.Info("Device token revoked", "username", username)
	return nil
}

// holder returns the user a token belongs to, provided the token is still the
// one stored on the account.
func (s *AccountService) holder(token string) (string, error) {
	claims, err := s.signer.Validate(token)
	if err != nil {
		return "", errors.ErrInvalidToken
	}
	account, err := s.accounts.GetAccount(claims.Username)
	if repositories.IsNotFound(err) {
		return "", errors.ErrInvalidToken
	}
	if err != nil {
		return "", errors.Remote("get account", err)
	}
	if account.PushToken != token {
		return "", errors.ErrInvalidToken
	}
	return claims.Username, nil
}

func (s *AccountService) issue(username string) (string, error) {
	token, err := s.signer.Generate(username)
	if err != nil {
		return "", errors.ErrTokenGeneration
	}
	if err = s.accounts.UpdatePushToken(username, token); err != nil {
		return "", errors.Remote("update push token", err)
	}
	s.log.Info("Device token issued", "username", username)
	return token, nil
}
