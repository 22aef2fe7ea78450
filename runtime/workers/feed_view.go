package workers

import (
	"context"
	"fmt"
	"group-talk/contract"
	"group-talk/domain"
	"log/slog"
)

// FeedViewWorker watches a room and hands every snapshot to its consumers.
type FeedViewWorker struct {
	log       *slog.Logger
	watcher   contract.IFeedWatcher
	room      domain.RoomID
	consumers []contract.IViewConsumer
}

func NewFeedViewWorker(log *slog.Logger, watcher contract.IFeedWatcher, room domain.RoomID,
	consumers ...contract.IViewConsumer) *FeedViewWorker {
	return &FeedViewWorker{log: log, watcher: watcher, room: room, consumers: consumers}
}

// Run returns the watch error so the supervisor opens a fresh subscription.
func (w *FeedViewWorker) Run(ctx context.Context) error {
	w.log.Info("Starting feed view worker", "room", w.room)
	err := w.watcher.Watch(ctx, w.room, func(view domain.FeedView) {
		for _, consumer := range w.consumers {
			if err := consumer.Apply(view); err != nil {
				w.log.Error("Failed to apply snapshot", "room", w.room,
					"consumer", fmt.Sprintf("%T", consumer), "error", err)
			}
		}
	})
	if err != nil {
		return err
	}
	return ctx.Err()
}
