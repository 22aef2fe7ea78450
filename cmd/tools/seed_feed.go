package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"group-talk/auth"
	"group-talk/domain"
	apperrors "group-talk/errors"
	"group-talk/feed"
	"group-talk/repositories"
	"group-talk/services"
	"log"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/samber/lo"
)

var lines = []string{
	"hi everyone",
	"who is up for lunch?",
	"meeting moved to noon",
	"see you there",
	"can someone review my change?",
	"done, looks good",
}

// Seeds a shared document store with demo accounts and a conversation, to try
// the client, the inspector and search on realistic data.
// With -remove it deletes one message instead, which subscribed clients see
// disappear from their timeline.
func main() {
	dbPath := flag.String("db", "./data/shared", "Path to the shared badger DB")
	room := flag.String("room", "group", "Room to fill")
	count := flag.Int("messages", 30, "Number of messages to append")
	users := flag.String("users", "alice,bob,carol", "Comma separated demo accounts")
	password := flag.String("password", "Secret123", "Password of every demo account")
	remove := flag.String("remove", "", "ID of a message to delete instead of seeding")
	flag.Parse()

	logger := logs.GetLoggerFromString("INFO")
	db, err := badger.Open(badger.DefaultOptions(*dbPath).WithLoggingLevel(badger.WARNING))
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	client := feed.NewClient(logger, repositories.NewFeedRepository(db, logger), repositories.NewNotificationRepository(db, logger))
	ctx := context.Background()
	if *remove != "" {
		id, err := uuid.Parse(*remove)
		if err != nil {
			log.Fatalf("Invalid message id %q: %v", *remove, err)
		}
		if err := client.Remove(ctx, id); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Removed message %s (%s)\n", id, *dbPath)
		return
	}

	usernames := lo.Compact(lo.Map(strings.Split(*users, ","), func(u string, _ int) string {
		return strings.TrimSpace(u)
	}))
	accounts := services.NewAccountService(logger, repositories.NewAccountRepository(db), auth.NewTokenSigner("seed", time.Hour))
	for _, username := range usernames {
		err = accounts.Register(ctx, username, *password)
		if err != nil && !errors.Is(err, apperrors.ErrUserAlreadyExists) {
			log.Fatalf("Cannot register %s: %v", username, err)
		}
	}

	for i := 0; i < *count; i++ {
		sender := usernames[i%len(usernames)]
		message, err := client.Append(ctx, domain.RoomID(*room), sender, lines[i%len(lines)])
		if err != nil {
			log.Fatal(err)
		}
		err = client.AppendNotification(ctx, domain.PendingNotification{
			MessageID: message.ID,
			Room:      message.Room,
			Sender:    message.Sender,
			Content:   message.Content,
			Timestamp: message.Timestamp,
			// Old demo messages are not worth an alert
			Processed: true,
		})
		if err != nil {
			log.Fatal(err)
		}
	}
	fmt.Printf("Seeded %d messages from %d accounts in room %q (%s)\n", *count, len(usernames), *room, *dbPath)
}
