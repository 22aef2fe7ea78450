package feed

import (
	"context"
	"errors"
	"group-talk/auth"
	"group-talk/domain"
	apperrors "group-talk/errors"
	"io"
	"log/slog"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

// RemoteClient reaches the feed hosted by the daemon with a device token.
// The daemon sets the sender of what is written to the token's user.
type RemoteClient struct {
	log   *slog.Logger
	conn  grpc.ClientConnInterface
	token string
}

func NewRemoteClient(log *slog.Logger, conn grpc.ClientConnInterface, token string) *RemoteClient {
	return &RemoteClient{log: log, conn: conn, token: token}
}

func (c *RemoteClient) Append(ctx context.Context, room domain.RoomID, _, content string) (domain.Message, error) {
	req := roomRequest(string(room))
	req.Fields[fieldContent] = structpb.NewStringValue(content)
	reply := new(structpb.Struct)
	if err := c.conn.Invoke(auth.WithBearer(ctx, c.token), AppendMethod, req, reply); err != nil {
		return domain.Message{}, apperrors.FromGRPCError("append", err)
	}
	message, err := messageFromStruct(reply)
	if err != nil {
		return domain.Message{}, apperrors.Remote("append", err)
	}
	return message, nil
}

func (c *RemoteClient) List(ctx context.Context, room domain.RoomID) ([]domain.Message, error) {
	reply := new(structpb.Struct)
	if err := c.conn.Invoke(auth.WithBearer(ctx, c.token), ListMethod, roomRequest(string(room)), reply); err != nil {
		return nil, apperrors.FromGRPCError("list", err)
	}
	messages, err := messagesFromValue(reply.GetFields()[fieldMessages])
	if err != nil {
		return nil, apperrors.Remote("list", err)
	}
	return messages, nil
}

func (c *RemoteClient) AppendNotification(ctx context.Context, notification domain.PendingNotification) error {
	err := c.conn.Invoke(auth.WithBearer(ctx, c.token), AppendNotificationMethod,
		notificationToStruct(notification), new(emptypb.Empty))
	return apperrors.FromGRPCError("append notification", err)
}

// Subscribe receives the room's change sets until ctx is done. A stream the
// daemon closes is an error, so the caller subscribes again.
func (c *RemoteClient) Subscribe(ctx context.Context, room domain.RoomID, onChange func(domain.ChangeSet)) error {
	stream, err := c.conn.NewStream(auth.WithBearer(ctx, c.token), &serviceDesc.Streams[0], SubscribeMethod)
	if err != nil {
		return apperrors.FromGRPCError("subscribe", err)
	}
	// io.EOF means the server already ended the stream, RecvMsg tells why
	if err = stream.SendMsg(roomRequest(string(room))); err != nil && !errors.Is(err, io.EOF) {
		return apperrors.FromGRPCError("subscribe", err)
	}
	if err = stream.CloseSend(); err != nil {
		return apperrors.FromGRPCError("subscribe", err)
	}
	c.log.Debug("Remote feed subscription opened", "room", room)

	for {
		msg := new(structpb.Struct)
		if err = stream.RecvMsg(msg); err != nil {
			if ctx.Err() != nil {
				c.log.Debug("Remote feed subscription closed", "room", room)
				return nil
			}
			if errors.Is(err, io.EOF) {
				return apperrors.Remote("subscribe", errors.New("feed stream closed by server"))
			}
			return apperrors.FromGRPCError("subscribe", err)
		}
		cs, err := changeSetFromStruct(msg)
		if err != nil {
			return apperrors.Remote("subscribe", err)
		}
		onChange(cs)
	}
}
