package push

import (
	"context"
	"errors"
	"group-talk/auth"
	apperrors "group-talk/errors"
	"io"
	"log/slog"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

// Client talks to the push service with a device token.
type Client struct {
	log   *slog.Logger
	conn  grpc.ClientConnInterface
	token string
}

func NewClient(log *slog.Logger, conn grpc.ClientConnInterface, token string) *Client {
	return &Client{log: log, conn: conn, token: token}
}

func (c *Client) withToken(ctx context.Context) context.Context {
	return auth.WithBearer(ctx, c.token)
}

func (c *Client) Publish(ctx context.Context, topic string, payload map[string]string) error {
	req, err := publishRequest(topic, payload)
	if err != nil {
		return apperrors.Remote("publish", err)
	}
	if err = c.conn.Invoke(c.withToken(ctx), PublishMethod, req, new(emptypb.Empty)); err != nil {
		return apperrors.Remote("publish", err)
	}
	return nil
}

// Subscribe listens on topic and hands every payload to onPush until ctx is
// done. Unsubscribing from the topic is cancelling ctx.
func (c *Client) Subscribe(ctx context.Context, topic string, onPush func(map[string]string)) error {
	stream, err := c.conn.NewStream(c.withToken(ctx), &serviceDesc.Streams[0], ListenMethod)
	if err != nil {
		return apperrors.Remote("listen", err)
	}
	if err = stream.SendMsg(listenRequest(topic)); err != nil {
		return apperrors.Remote("listen", err)
	}
	if err = stream.CloseSend(); err != nil {
		return apperrors.Remote("listen", err)
	}
	c.log.Info("Subscribed to topic", "topic", topic)

	for {
		msg := new(structpb.Struct)
		if err = stream.RecvMsg(msg); err != nil {
			if ctx.Err() != nil || errors.Is(err, io.EOF) {
				c.log.Info("Unsubscribed from topic", "topic", topic)
				return nil
			}
			return apperrors.Remote("listen", err)
		}
		onPush(fromStruct(msg))
	}
}
