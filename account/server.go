package account

import (
	"context"
	"group-talk/auth"
	"group-talk/contract"
	"group-talk/errors"
	"log/slog"

	"google.golang.org/grpc/metadata"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

type Server struct {
	log      *slog.Logger
	accounts contract.IAccounts
}

func NewServer(log *slog.Logger, accounts contract.IAccounts) *Server {
	return &Server{log: log, accounts: accounts}
}

func (s *Server) Register(ctx context.Context, req *structpb.Struct) (*emptypb.Empty, error) {
	if err := s.accounts.Register(ctx, field(req, fieldUsername), field(req, fieldPassword)); err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &emptypb.Empty{}, nil
}

func (s *Server) Login(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	token, err := s.accounts.Login(ctx, field(req, fieldUsername), field(req, fieldPassword))
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return tokenMessage(token), nil
}

func (s *Server) Refresh(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	token, err := s.accounts.Refresh(ctx, field(req, fieldToken))
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return tokenMessage(token), nil
}

// Revoke revokes the bearer token the call was authenticated with.
func (s *Server) Revoke(ctx context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	username, _ := auth.UsernameFromContext(ctx)
	if err := s.accounts.Revoke(ctx, bearer(ctx)); err != nil {
		s.log.Warn("Failed to revoke device token", "username", username, "error", err)
		return nil, errors.MapToGRPCError(err)
	}
	return &emptypb.Empty{}, nil
}

func bearer(ctx context.Context) string {
	md, _ := metadata.FromIncomingContext(ctx)
	values := md.Get("authorization")
	if len(values) == 0 {
		return ""
	}
	return auth.BearerToken(values[0])
}
