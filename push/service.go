// Package push is the push channel: devices listen on named topics and
// receive key-value payloads published to them.
package push

import (
	"context"

	"github.com/samber/lo"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	ServiceName   = "grouptalk.push.v1.PushService"
	PublishMethod = "/" + ServiceName + "/Publish"
	ListenMethod  = "/" + ServiceName + "/Listen"
	fieldTopic    = "topic"
	fieldPayload  = "payload"
)

// PushServiceServer is the server API of the push service.
// Requests are Struct values: Publish carries {topic, payload}, Listen carries {topic}.
// Listen streams one Struct per payload.
type PushServiceServer interface {
	Publish(ctx context.Context, req *structpb.Struct) (*emptypb.Empty, error)
	Listen(req *structpb.Struct, stream grpc.ServerStream) error
}

func RegisterPushServiceServer(s grpc.ServiceRegistrar, srv PushServiceServer) {
	s.RegisterService(&serviceDesc, srv)
}

var serviceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*PushServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Publish", Handler: publishHandler},
	},
	Streams: []grpc.StreamDesc{
		{StreamName: "Listen", Handler: listenHandler, ServerStreams: true},
	},
}

func publishHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PushServiceServer).Publish(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PublishMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PushServiceServer).Publish(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func listenHandler(srv any, stream grpc.ServerStream) error {
	in := new(structpb.Struct)
	if err := stream.RecvMsg(in); err != nil {
		return err
	}
	return srv.(PushServiceServer).Listen(in, stream)
}

func toStruct(payload map[string]string) (*structpb.Struct, error) {
	return structpb.NewStruct(lo.MapValues(payload, func(value string, _ string) any {
		return value
	}))
}

// fromStruct keeps string fields only; anything else becomes an empty value
// and is rejected later by payload validation.
func fromStruct(s *structpb.Struct) map[string]string {
	return lo.MapValues(s.GetFields(), func(value *structpb.Value, _ string) string {
		return value.GetStringValue()
	})
}

func publishRequest(topic string, payload map[string]string) (*structpb.Struct, error) {
	p, err := toStruct(payload)
	if err != nil {
		return nil, err
	}
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		fieldTopic:   structpb.NewStringValue(topic),
		fieldPayload: structpb.NewStructValue(p),
	}}, nil
}

func listenRequest(topic string) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		fieldTopic: structpb.NewStringValue(topic),
	}}
}
