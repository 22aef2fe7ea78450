// Package account serves the account directory over gRPC, so that every
// device signs in against the same accounts.
package account

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	ServiceName    = "grouptalk.account.v1.AccountService"
	RegisterMethod = "/" + ServiceName + "/Register"
	LoginMethod    = "/" + ServiceName + "/Login"
	RefreshMethod  = "/" + ServiceName + "/Refresh"
	RevokeMethod   = "/" + ServiceName + "/Revoke"
	fieldUsername  = "username"
	fieldPassword  = "password"
	fieldToken     = "token"
)

// PublicMethods are reachable without a device token. Refresh carries the
// token in its request so that the caller learns why it was refused.
var PublicMethods = []string{RegisterMethod, LoginMethod, RefreshMethod}

// AccountServiceServer is the server API of the account service.
// Register and Login carry {username, password}; Login and Refresh answer {token}.
// Refresh carries {token}; Revoke is authenticated by the bearer token.
type AccountServiceServer interface {
	Register(ctx context.Context, req *structpb.Struct) (*emptypb.Empty, error)
	Login(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	Refresh(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	Revoke(ctx context.Context, req *emptypb.Empty) (*emptypb.Empty, error)
}

func RegisterAccountServiceServer(s grpc.ServiceRegistrar, srv AccountServiceServer) {
	s.RegisterService(&serviceDesc, srv)
}

var serviceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*AccountServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Register", Handler: unaryHandler(RegisterMethod, func(srv AccountServiceServer, ctx context.Context, req *structpb.Struct) (any, error) {
			return srv.Register(ctx, req)
		})},
		{MethodName: "Login", Handler: unaryHandler(LoginMethod, func(srv AccountServiceServer, ctx context.Context, req *structpb.Struct) (any, error) {
			return srv.Login(ctx, req)
		})},
		{MethodName: "Refresh", Handler: unaryHandler(RefreshMethod, func(srv AccountServiceServer, ctx context.Context, req *structpb.Struct) (any, error) {
			return srv.Refresh(ctx, req)
		})},
		{MethodName: "Revoke", Handler: revokeHandler},
	},
}

func unaryHandler(method string, call func(AccountServiceServer, context.Context, *structpb.Struct) (any, error)) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(AccountServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: method}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(AccountServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

func revokeHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AccountServiceServer).Revoke(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: RevokeMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(AccountServiceServer).Revoke(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func credentials(username, password string) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		fieldUsername: structpb.NewStringValue(username),
		fieldPassword: structpb.NewStringValue(password),
	}}
}

func tokenMessage(token string) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		fieldToken: structpb.NewStringValue(token),
	}}
}

func field(s *structpb.Struct, name string) string {
	return s.GetFields()[name].GetStringValue()
}
