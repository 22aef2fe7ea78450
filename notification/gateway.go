// Package notification delivers user-visible alerts, either from feed changes
// or from payloads pushed while the application is in the background.
package notification

import (
	"fmt"
	"group-talk/contract"
	"group-talk/domain"
	"group-talk/push"
	"log/slog"
	"sync/atomic"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
)

const (
	defaultRememberedMessages = 1024
	sentAtLayout              = "2006-01-02 15:04:05"
)

// Gateway displays alerts. Each alert gets the next value of a counter as its
// identifier, so overlapping calls never share one. A message ID is alerted at
// most once among the last remembered ones, whichever path delivers it.
type Gateway struct {
	log        *slog.Logger
	displayer  contract.IAlertDisplayer
	foreground contract.IForeground
	counter    atomic.Uint64
	delivered  *lru.Cache[uuid.UUID, struct{}]
}

func NewGateway(log *slog.Logger, displayer contract.IAlertDisplayer, foreground contract.IForeground) *Gateway {
	// Only a non-positive size fails
	delivered, _ := lru.New[uuid.UUID, struct{}](defaultRememberedMessages)
	return &Gateway{
		log:        log,
		displayer:  displayer,
		foreground: foreground,
		delivered:  delivered,
	}
}

// Notify displays an alert. Display failures are logged, never returned.
func (g *Gateway) Notify(title, body string) domain.Alert {
	alert := domain.Alert{ID: g.counter.Add(1), Title: title, Body: body}
	if err := g.displayer.Display(alert); err != nil {
		g.log.Error("Failed to display alert", "alert_id", alert.ID, "error", err)
	}
	return alert
}

// NotifyMessage alerts about a chat message unless it was already alerted.
// It reports whether an alert was produced.
func (g *Gateway) NotifyMessage(message domain.Message) bool {
	return g.deliver(message.ID, message.Sender, message.Content)
}

// OnPush handles a payload received from the push channel. Nothing is shown
// while the application is in the foreground.
func (g *Gateway) OnPush(raw map[string]string) error {
	payload, err := push.DecodePayload(raw)
	if err != nil {
		g.log.Warn("Dropping push payload", "error", err)
		return err
	}
	if g.foreground.IsForeground() {
		g.log.Debug("Push payload ignored in foreground", "message_id", payload.MessageID)
		return nil
	}
	body := fmt.Sprintf("%s\nsent at: %s", payload.Content, payload.Timestamp.Local().Format(sentAtLayout))
	g.deliver(payload.MessageID, payload.Sender, body)
	return nil
}

func (g *Gateway) deliver(messageID uuid.UUID, title, body string) bool {
	if messageID != uuid.Nil {
		if seen, _ := g.delivered.ContainsOrAdd(messageID, struct{}{}); seen {
			g.log.Debug("Message already alerted", "message_id", messageID)
			return false
		}
	}
	g.Notify(title, body)
	return true
}
