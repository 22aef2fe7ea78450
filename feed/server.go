package feed

import (
	"context"
	"group-talk/auth"
	"group-talk/contract"
	"group-talk/domain"
	"group-talk/errors"
	"log/slog"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

// Server exposes a feed to remote devices. Every call is made on behalf of
// the user of the device token; that user is the sender of what it writes.
type Server struct {
	log  *slog.Logger
	feed contract.IRemoteFeed
}

func NewServer(log *slog.Logger, feed contract.IRemoteFeed) *Server {
	return &Server{log: log, feed: feed}
}

func roomOf(req *structpb.Struct) (domain.RoomID, error) {
	room := req.GetFields()[fieldRoom].GetStringValue()
	if room == "" || strings.Contains(room, ":") {
		return "", status.Error(codes.InvalidArgument, "room must be non-empty and free of ':'")
	}
	return domain.RoomID(room), nil
}

func caller(ctx context.Context) (string, error) {
	username, ok := auth.UsernameFromContext(ctx)
	if !ok || username == "" {
		return "", status.Error(codes.Unauthenticated, "no identity on the call")
	}
	return username, nil
}

func (s *Server) Append(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	username, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	room, err := roomOf(req)
	if err != nil {
		return nil, err
	}
	content := strings.TrimSpace(req.GetFields()[fieldContent].GetStringValue())
	if content == "" {
		return nil, errors.MapToGRPCError(errors.ErrEmptyMessage)
	}
	message, err := s.feed.Append(ctx, room, username, content)
	if err != nil {
		s.log.Error("Failed to append message", "room", room, "username", username, "error", err)
		return nil, errors.MapToGRPCError(err)
	}
	return messageToValue(message).GetStructValue(), nil
}

func (s *Server) List(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	room, err := roomOf(req)
	if err != nil {
		return nil, err
	}
	messages, err := s.feed.List(ctx, room)
	if err != nil {
		s.log.Error("Failed to list messages", "room", room, "error", err)
		return nil, errors.MapToGRPCError(err)
	}
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		fieldMessages: messagesToValue(messages),
	}}, nil
}

// AppendNotification stores a record for a message the caller wrote.
func (s *Server) AppendNotification(ctx context.Context, req *structpb.Struct) (*emptypb.Empty, error) {
	username, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	notification, err := notificationFromStruct(req)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if notification.Sender != username {
		return nil, status.Error(codes.PermissionDenied, "notification sender does not match the device token")
	}
	if err = s.feed.AppendNotification(ctx, notification); err != nil {
		s.log.Error("Failed to append notification record", "message_id", notification.MessageID, "error", err)
		return nil, errors.MapToGRPCError(err)
	}
	return &emptypb.Empty{}, nil
}

// Subscribe streams the room's change sets until the device leaves or a
// send fails.
func (s *Server) Subscribe(req *structpb.Struct, stream grpc.ServerStream) error {
	room, err := roomOf(req)
	if err != nil {
		return err
	}
	username, _ := auth.UsernameFromContext(stream.Context())
	ctx, cancel := context.WithCancel(stream.Context())
	defer cancel()

	// onChange runs on this goroutine, inside Subscribe
	var sendErr error
	s.log.Info("Device subscribed to feed", "room", room, "username", username)
	err = s.feed.Subscribe(ctx, room, func(cs domain.ChangeSet) {
		if sendErr != nil {
			return
		}
		if err := stream.SendMsg(changeSetToStruct(cs)); err != nil {
			s.log.Error("Failed to push change set to stream", "room", room, "username", username, "error", err)
			sendErr = err
			cancel()
		}
	})
	if err != nil {
		return errors.MapToGRPCError(err)
	}
	s.log.Info("Device left feed", "room", room, "username", username)
	return sendErr
}
