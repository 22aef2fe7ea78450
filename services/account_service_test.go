package services

import (
	"context"
	"group-talk/auth"
	"group-talk/domain"
	"group-talk/errors"
	"group-talk/mocks"
	"log/slog"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newAccountService(ctrl *gomock.Controller) (*AccountService, *mocks.MockIAccountRepository, auth.TokenSigner) {
	accounts := mocks.NewMockIAccountRepository(ctrl)
	signer := auth.NewTokenSigner("test-secret", time.Hour)
	return NewAccountService(slog.Default(), accounts, signer), accounts, signer
}

func TestAccountService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("should register successfully when input is valid", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		svc, accounts, _ := newAccountService(ctrl)

		// Expect a hashed password, never the plain one
		accounts.EXPECT().
			CreateAccount("alice", gomock.Not("Secret123")).
			Return(nil).
			Times(1)

		req.NoError(svc.Register(ctx, "alice", "Secret123"))
	})

	t.Run("should fail when password complexity is not met", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		svc, _, _ := newAccountService(ctrl)

		// Repository should NEVER be called
		err := svc.Register(ctx, "alice", "onlyletters")

		req.ErrorIs(err, errors.ErrInvalidPassword)
		req.ErrorIs(err, errors.ErrValidation)
	})

	t.Run("should fail when user already exists in repository", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		svc, accounts, _ := newAccountService(ctrl)

		accounts.EXPECT().
			CreateAccount("alice", gomock.Any()).
			Return(errors.ErrUserAlreadyExists)

		req.ErrorIs(svc.Register(ctx, "alice", "Secret123"), errors.ErrUserAlreadyExists)
	})
}

func TestAccountService_Login(t *testing.T) {
	ctx := context.Background()
	hashedPassword, err := auth.HashPassword("Secret123")
	require.NoError(t, err)
	account := domain.Account{Username: "alice", PasswordHash: hashedPassword}

	t.Run("should issue a token stored on the account", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		svc, accounts, signer := newAccountService(ctrl)

		accounts.EXPECT().GetAccount("alice").Return(account, nil)
		accounts.EXPECT().UpdatePushToken("alice", gomock.Any()).Return(nil)

		token, err := svc.Login(ctx, "alice", "Secret123")

		req.NoError(err)
		claims, err := signer.Validate(token)
		req.NoError(err)
		req.Equal("alice", claims.Username)
	})

	t.Run("should return invalid credentials when password matches nothing", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		svc, accounts, _ := newAccountService(ctrl)

		accounts.EXPECT().GetAccount("alice").Return(account, nil)

		_, err := svc.Login(ctx, "alice", "Wrong12345")

		req.ErrorIs(err, errors.ErrInvalidCredentials)
		req.ErrorIs(err, errors.ErrAuth)
	})

	t.Run("should return invalid credentials when user is not found", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		svc, accounts, _ := newAccountService(ctrl)

		accounts.EXPECT().GetAccount("bob").Return(domain.Account{}, badger.ErrKeyNotFound)

		_, err := svc.Login(ctx, "bob", "Secret123")

		req.ErrorIs(err, errors.ErrInvalidCredentials)
	})

	t.Run("should fail when the token cannot be stored", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		svc, accounts, _ := newAccountService(ctrl)

		accounts.EXPECT().GetAccount("alice").Return(account, nil)
		accounts.EXPECT().UpdatePushToken("alice", gomock.Any()).Return(badger.ErrDBClosed)

		_, err := svc.Login(ctx, "alice", "Secret123")

		req.ErrorIs(err, errors.ErrRemote)
	})
}

func TestAccountService_Refresh_And_Revoke(t *testing.T) {
	ctx := context.Background()

	t.Run("should trade the stored token for a new one", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		svc, accounts, signer := newAccountService(ctrl)
		stored, err := signer.Generate("alice")
		req.NoError(err)

		accounts.EXPECT().GetAccount("alice").Return(domain.Account{Username: "alice", PushToken: stored}, nil)
		accounts.EXPECT().UpdatePushToken("alice", gomock.Any()).Return(nil)

		refreshed, err := svc.Refresh(ctx, stored)
		req.NoError(err)
		_, err = signer.Validate(refreshed)
		req.NoError(err)
	})

	t.Run("should refuse a token that is no longer stored", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		svc, accounts, signer := newAccountService(ctrl)
		revoked, err := signer.Generate("alice")
		req.NoError(err)

		accounts.EXPECT().GetAccount("alice").Return(domain.Account{Username: "alice"}, nil)

		_, err = svc.Refresh(ctx, revoked)
		req.ErrorIs(err, errors.ErrInvalidToken)
	})

	t.Run("should refuse an expired token without reading the account", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		svc, _, _ := newAccountService(ctrl)
		expired, err := auth.NewTokenSigner("test-secret", -time.Minute).Generate("alice")
		req.NoError(err)

		_, err = svc.Refresh(ctx, expired)
		req.ErrorIs(err, errors.ErrInvalidToken)
	})

	t.Run("should clear the stored token on revoke", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		svc, accounts, signer := newAccountService(ctrl)
		stored, err := signer.Generate("alice")
		req.NoError(err)

		accounts.EXPECT().GetAccount("alice").Return(domain.Account{Username: "alice", PushToken: stored}, nil)
		accounts.EXPECT().UpdatePushToken("alice", "").Return(nil)

		req.NoError(svc.Revoke(ctx, stored))
	})
}
