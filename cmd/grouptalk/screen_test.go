package main

import (
	"bufio"
	"bytes"
	"context"
	"group-talk/domain"
	"group-talk/errors"
	"group-talk/notification"
	"group-talk/services"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestScreen_Apply_Prints_Each_Message_Once(t *testing.T) {
	req := require.New(t)
	var out bytes.Buffer
	screen := NewScreen(&out, false, "alice")
	hi := domain.Message{ID: uuid.New(), Sender: "alice", Content: "hi", Timestamp: time.Now()}
	there := domain.Message{ID: uuid.New(), Sender: "bob", Content: "there", Timestamp: time.Now()}

	req.NoError(screen.Apply(domain.FeedView{Messages: []domain.Message{hi}}))
	req.NoError(screen.Apply(domain.FeedView{Messages: []domain.Message{hi, there}}))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	req.Len(lines, 2)
	req.True(strings.HasSuffix(lines[0], "alice: hi"))
	req.True(strings.HasSuffix(lines[1], "bob: there"))
}

func TestScreen_Table(t *testing.T) {
	req := require.New(t)
	var out bytes.Buffer
	screen := NewScreen(&out, false, "alice")

	screen.Table([]domain.Message{{ID: uuid.New(), Sender: "bob", Content: "lunch?", Timestamp: time.Now()}})

	req.Contains(out.String(), "SENDER")
	req.Contains(out.String(), "lunch?")
}

type fakeChat struct {
	sent    []string
	history []domain.Message
}

func (f *fakeChat) Send(_ context.Context, text string) (domain.Message, error) {
	if strings.TrimSpace(text) == "" {
		return domain.Message{}, errors.ErrEmptyMessage
	}
	f.sent = append(f.sent, text)
	return domain.Message{Content: text}, nil
}

func (f *fakeChat) History(context.Context) ([]domain.Message, error) {
	return f.history, nil
}

func (f *fakeChat) Search(context.Context, string) ([]domain.Message, error) {
	return f.history, nil
}

type fakeAuth struct {
	loggedOut bool
}

func (f *fakeAuth) Register(context.Context, string, string) error { return nil }

func (f *fakeAuth) Login(context.Context, string, string) (services.Token, error) { return "", nil }

func (f *fakeAuth) Logout(context.Context) error {
	f.loggedOut = true
	return nil
}

func (f *fakeAuth) Resume(context.Context) (string, bool) { return "alice", true }

func (f *fakeAuth) DeviceToken() (services.Token, error) { return "", nil }

func TestChatLoop(t *testing.T) {
	t.Run("should send messages and toggle foreground", func(t *testing.T) {
		req := require.New(t)
		var out bytes.Buffer
		chat := &fakeChat{}
		foreground := notification.NewForeground(true)
		loop := &chatLoop{screen: NewScreen(&out, false, "alice"), chat: chat, auth: &fakeAuth{}, foreground: foreground}
		in := bufio.NewScanner(strings.NewReader("hi\n/away\n   \n/quit\nnever sent\n"))

		req.NoError(loop.run(context.Background(), in))

		req.Equal([]string{"hi"}, chat.sent)
		req.False(foreground.IsForeground())
		req.Contains(out.String(), "Message not sent")
	})

	t.Run("should logout and stop", func(t *testing.T) {
		req := require.New(t)
		var out bytes.Buffer
		auth := &fakeAuth{}
		loop := &chatLoop{screen: NewScreen(&out, false, "alice"), chat: &fakeChat{}, auth: auth, foreground: notification.NewForeground(true)}

		req.NoError(loop.run(context.Background(), bufio.NewScanner(strings.NewReader("/logout\n"))))

		req.True(auth.loggedOut)
		req.Contains(out.String(), "Logged out")
	})
}
