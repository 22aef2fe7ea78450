package account

import (
	"context"
	"group-talk/auth"
	"group-talk/errors"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

// Client reaches the account directory hosted by the daemon. Errors come
// back as the same sentinels the directory returns in process.
type Client struct {
	conn grpc.ClientConnInterface
}

func NewClient(conn grpc.ClientConnInterface) *Client {
	return &Client{conn: conn}
}

func (c *Client) Register(ctx context.Context, username, password string) error {
	err := c.conn.Invoke(ctx, RegisterMethod, credentials(username, password), new(emptypb.Empty))
	return errors.FromGRPCError("register", err)
}

func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	reply := new(structpb.Struct)
	if err := c.conn.Invoke(ctx, LoginMethod, credentials(username, password), reply); err != nil {
		return "", errors.FromGRPCError("login", err)
	}
	return field(reply, fieldToken), nil
}

func (c *Client) Refresh(ctx context.Context, token string) (string, error) {
	reply := new(structpb.Struct)
	if err := c.conn.Invoke(ctx, RefreshMethod, tokenMessage(token), reply); err != nil {
		return "", errors.FromGRPCError("refresh", err)
	}
	return field(reply, fieldToken), nil
}

func (c *Client) Revoke(ctx context.Context, token string) error {
	err := c.conn.Invoke(auth.WithBearer(ctx, token), RevokeMethod, new(emptypb.Empty), new(emptypb.Empty))
	return errors.FromGRPCError("revoke", err)
}
