package push

import (
	"context"
	"fmt"
	"group-talk/auth"
	"log/slog"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

type Server struct {
	log        *slog.Logger
	registry   *Registry
	bufferSize int
}

func NewServer(log *slog.Logger, registry *Registry, bufferSize int) *Server {
	return &Server{log: log, registry: registry, bufferSize: bufferSize}
}

// Publish fans a payload out to the topic on behalf of the caller. A device
// only publishes as the user its token was issued to.
func (s *Server) Publish(ctx context.Context, req *structpb.Struct) (*emptypb.Empty, error) {
	topic := req.GetFields()[fieldTopic].GetStringValue()
	if topic == "" {
		return nil, status.Error(codes.InvalidArgument, "topic is required")
	}
	payload := fromStruct(req.GetFields()[fieldPayload].GetStructValue())
	username, _ := auth.UsernameFromContext(ctx)
	if username == "" || payload[KeySender] != username {
		s.log.Warn("Refusing payload published for another sender",
			"topic", topic, "username", username, "sender", payload[KeySender])
		return nil, status.Error(codes.PermissionDenied, "payload sender does not match the device token")
	}
	s.Broadcast(topic, payload)
	return &emptypb.Empty{}, nil
}

// Broadcast delivers a payload to every listener of the topic, except the
// devices of the payload's own sender. Delivery is best effort: a listener
// whose buffer is full misses the payload.
func (s *Server) Broadcast(topic string, payload map[string]string) {
	sender := payload[KeySender]
	for _, l := range s.registry.GetListeners(topic) {
		if sender != "" && l.Username == sender {
			continue
		}
		select {
		case l.Payloads <- payload:
		default:
			s.log.Warn("Listener buffer full, dropping payload",
				"topic", topic, "listener", l.ID, "username", l.Username)
		}
	}
}

// LocalPublisher publishes from inside the daemon, where the payload comes
// from the notifications collection rather than from a device.
type LocalPublisher struct {
	server *Server
}

func NewLocalPublisher(server *Server) LocalPublisher {
	return LocalPublisher{server: server}
}

func (p LocalPublisher) Publish(ctx context.Context, topic string, payload map[string]string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p.server.Broadcast(topic, payload)
	return nil
}

// Listen subscribes the caller to a topic until the stream ends.
func (s *Server) Listen(req *structpb.Struct, stream grpc.ServerStream) error {
	topic := req.GetFields()[fieldTopic].GetStringValue()
	if topic == "" {
		return status.Error(codes.InvalidArgument, "topic is required")
	}
	username, _ := auth.UsernameFromContext(stream.Context())
	listener := &Listener{
		ID:       uuid.NewString(),
		Username: username,
		Payloads: make(chan map[string]string, s.bufferSize),
	}
	s.registry.Subscribe(topic, listener)
	defer s.registry.Unsubscribe(topic, listener.ID)
	s.log.Info("Listener subscribed", "topic", topic, "username", username, "listener", listener.ID)

	for {
		select {
		case <-stream.Context().Done():
			s.log.Info(fmt.Sprintf("Listener %s left topic %s", listener.ID, topic))
			return nil
		case payload := <-listener.Payloads:
			msg, err := toStruct(payload)
			if err != nil {
				s.log.Error("Failed to encode payload", "topic", topic, "error", err)
				continue
			}
			if err = stream.SendMsg(msg); err != nil {
				s.log.Error("Failed to push payload to stream",
					"topic", topic, "username", username, "error", err)
				return err
			}
		}
	}
}
