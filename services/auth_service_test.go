package services

import (
	"context"
	"group-talk/errors"
	"group-talk/mocks"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newAuthService(ctrl *gomock.Controller) (*AuthService, *mocks.MockIAccounts, *mocks.MockISessionStore) {
	accounts := mocks.NewMockIAccounts(ctrl)
	sessions := mocks.NewMockISessionStore(ctrl)
	return NewAuthService(slog.Default(), accounts, sessions), accounts, sessions
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("should save the session with the issued token", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		svc, accounts, sessions := newAuthService(ctrl)

		accounts.EXPECT().Login(ctx, "alice", "Secret123").Return("token-1", nil)
		sessions.EXPECT().Save("alice", "token-1").Return(nil)

		token, err := svc.Login(ctx, "alice", "Secret123")

		req.NoError(err)
		req.Equal("token-1", token.String())
	})

	t.Run("should not open a session when the directory refuses", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		svc, accounts, _ := newAuthService(ctrl)

		accounts.EXPECT().Login(ctx, "alice", "Wrong12345").Return("", errors.ErrInvalidCredentials)

		_, err := svc.Login(ctx, "alice", "Wrong12345")

		req.ErrorIs(err, errors.ErrInvalidCredentials)
	})
}

func TestAuthService_Logout(t *testing.T) {
	ctx := context.Background()

	t.Run("should revoke token, run hooks, clear and wipe", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		svc, accounts, sessions := newAuthService(ctrl)
		hooked := false
		svc.OnLogout(func() { hooked = true })

		gomock.InOrder(
			sessions.EXPECT().Current().Return("alice", nil),
			sessions.EXPECT().Token().Return("token-1", nil),
			accounts.EXPECT().Revoke(ctx, "token-1").Return(nil),
			sessions.EXPECT().Clear().Return(nil),
			sessions.EXPECT().Wipe().Return(nil),
		)

		req.NoError(svc.Logout(ctx))
		req.True(hooked)
	})

	t.Run("should log out even when the directory is unreachable", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		svc, accounts, sessions := newAuthService(ctrl)

		sessions.EXPECT().Current().Return("alice", nil)
		sessions.EXPECT().Token().Return("token-1", nil)
		accounts.EXPECT().Revoke(ctx, "token-1").Return(errors.Remote("revoke", context.DeadlineExceeded))
		sessions.EXPECT().Clear().Return(nil)
		sessions.EXPECT().Wipe().Return(nil)

		req.NoError(svc.Logout(ctx))
	})

	t.Run("should still wipe without a session", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		svc, _, sessions := newAuthService(ctrl)

		sessions.EXPECT().Current().Return("", errors.ErrNoSession)
		sessions.EXPECT().Clear().Return(nil)
		sessions.EXPECT().Wipe().Return(nil)

		req.NoError(svc.Logout(ctx))
	})
}

func TestAuthService_Resume(t *testing.T) {
	ctx := context.Background()

	t.Run("should resume a saved session with a refreshed token", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		svc, accounts, sessions := newAuthService(ctrl)
		sessions.EXPECT().Current().Return("alice", nil)
		sessions.EXPECT().Token().Return("token-1", nil)
		accounts.EXPECT().Refresh(ctx, "token-1").Return("token-2", nil)
		sessions.EXPECT().Save("alice", "token-2").Return(nil)

		username, ok := svc.Resume(ctx)

		req.True(ok)
		req.Equal("alice", username)
	})

	t.Run("should keep the session when the directory is unreachable", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		svc, accounts, sessions := newAuthService(ctrl)
		sessions.EXPECT().Current().Return("alice", nil)
		sessions.EXPECT().Token().Return("token-1", nil)
		accounts.EXPECT().Refresh(ctx, "token-1").Return("", errors.Remote("refresh", context.DeadlineExceeded))

		username, ok := svc.Resume(ctx)

		req.True(ok)
		req.Equal("alice", username)
	})

	t.Run("should end a session whose token was revoked", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		svc, accounts, sessions := newAuthService(ctrl)
		sessions.EXPECT().Current().Return("alice", nil)
		sessions.EXPECT().Token().Return("token-1", nil)
		accounts.EXPECT().Refresh(ctx, "token-1").Return("", errors.ErrInvalidToken)
		sessions.EXPECT().Clear().Return(nil)

		_, ok := svc.Resume(ctx)

		req.False(ok)
	})

	t.Run("should not resume after logout", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		svc, _, sessions := newAuthService(ctrl)
		sessions.EXPECT().Current().Return("", errors.ErrNoSession)

		_, ok := svc.Resume(ctx)

		req.False(ok)
	})
}

func TestAuthService_DeviceToken(t *testing.T) {
	t.Run("should return the session token", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		svc, _, sessions := newAuthService(ctrl)
		sessions.EXPECT().Token().Return("token-1", nil)

		token, err := svc.DeviceToken()
		req.NoError(err)
		req.Equal("token-1", token.String())
	})

	t.Run("should fail without session", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		svc, _, sessions := newAuthService(ctrl)
		sessions.EXPECT().Token().Return("", errors.ErrNoSession)

		_, err := svc.DeviceToken()
		req.ErrorIs(err, errors.ErrNoSession)
	})
}
