package main

import (
	"bufio"
	"context"
	"group-talk/notification"
	"group-talk/services"
	"strings"
)

const help = "/history  /search <text>  /away  /back  /logout  /quit"

type chatLoop struct {
	screen     *Screen
	chat       services.IChatService
	auth       services.IAuthService
	foreground *notification.Foreground
}

// run reads lines until /quit, /logout, the end of input or ctx is done.
func (c *chatLoop) run(ctx context.Context, in *bufio.Scanner) error {
	lines := make(chan string)
	go func() {
		defer close(lines)
		for in.Scan() {
			select {
			case lines <- in.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	c.screen.Print("Type a message or one of %s", help)
	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			quit, err := c.handle(ctx, line)
			if err != nil || quit {
				return err
			}
		}
	}
}

// handle runs one input line and reports whether the session is over.
func (c *chatLoop) handle(ctx context.Context, line string) (bool, error) {
	command, argument, _ := strings.Cut(strings.TrimSpace(line), " ")
	switch command {
	case "/quit":
		return true, nil
	case "/logout":
		if err := c.auth.Logout(ctx); err != nil {
			return true, err
		}
		c.screen.Print("Logged out, local data wiped")
		return true, nil
	case "/away":
		c.foreground.Set(false)
		c.screen.Print("Away, alerts enabled")
	case "/back":
		c.foreground.Set(true)
		c.screen.Print("Back, alerts muted")
	case "/history":
		messages, err := c.chat.History(ctx)
		if err != nil {
			c.screen.Print("Could not load history: %s", userMessage(err))
			return false, nil
		}
		c.screen.Table(messages)
	case "/search":
		messages, err := c.chat.Search(ctx, strings.TrimSpace(argument))
		if err != nil {
			c.screen.Print("Search failed: %s", userMessage(err))
			return false, nil
		}
		c.screen.Table(messages)
	case "/help":
		c.screen.Print(help)
	default:
		if strings.HasPrefix(command, "/") {
			c.screen.Print("Unknown command %s, try %s", command, help)
			return false, nil
		}
		if _, err := c.chat.Send(ctx, line); err != nil {
			c.screen.Print("Message not sent: %s", userMessage(err))
		}
	}
	return false, nil
}
