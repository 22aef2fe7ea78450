package feed

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	ServiceName              = "grouptalk.feed.v1.FeedService"
	AppendMethod             = "/" + ServiceName + "/Append"
	ListMethod               = "/" + ServiceName + "/List"
	AppendNotificationMethod = "/" + ServiceName + "/AppendNotification"
	SubscribeMethod          = "/" + ServiceName + "/Subscribe"
	fieldRoom                = "room"
	fieldContent             = "content"
	fieldMessages            = "messages"
)

// FeedServiceServer is the server API of the feed service.
// Append carries {room, content} and answers the stored message; List carries
// {room} and answers {messages}; AppendNotification carries a notification
// record. Subscribe carries {room} and streams one change set per message.
type FeedServiceServer interface {
	Append(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	List(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	AppendNotification(ctx context.Context, req *structpb.Struct) (*emptypb.Empty, error)
	Subscribe(req *structpb.Struct, stream grpc.ServerStream) error
}

func RegisterFeedServiceServer(s grpc.ServiceRegistrar, srv FeedServiceServer) {
	s.RegisterService(&serviceDesc, srv)
}

var serviceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*FeedServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Append", Handler: unaryHandler(AppendMethod, func(srv FeedServiceServer, ctx context.Context, req *structpb.Struct) (any, error) {
			return srv.Append(ctx, req)
		})},
		{MethodName: "List", Handler: unaryHandler(ListMethod, func(srv FeedServiceServer, ctx context.Context, req *structpb.Struct) (any, error) {
			return srv.List(ctx, req)
		})},
		{MethodName: "AppendNotification", Handler: unaryHandler(AppendNotificationMethod, func(srv FeedServiceServer, ctx context.Context, req *structpb.Struct) (any, error) {
			return srv.AppendNotification(ctx, req)
		})},
	},
	Streams: []grpc.StreamDesc{
		{StreamName: "Subscribe", Handler: subscribeHandler, ServerStreams: true},
	},
}

func unaryHandler(method string, call func(FeedServiceServer, context.Context, *structpb.Struct) (any, error)) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(FeedServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: method}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(FeedServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

func subscribeHandler(srv any, stream grpc.ServerStream) error {
	in := new(structpb.Struct)
	if err := stream.RecvMsg(in); err != nil {
		return err
	}
	return srv.(FeedServiceServer).Subscribe(in, stream)
}

func roomRequest(room string) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		fieldRoom: structpb.NewStringValue(room),
	}}
}
