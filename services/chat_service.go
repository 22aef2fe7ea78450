package services

import (
	"context"
	"group-talk/contract"
	"group-talk/domain"
	"group-talk/errors"
	"group-talk/runtime"
	"group-talk/search"
)

type IChatService interface {
	Send(ctx context.Context, text string) (domain.Message, error)
	History(ctx context.Context) ([]domain.Message, error)
	Search(ctx context.Context, text string) ([]domain.Message, error)
}

// IHistory lists a room's messages ascending by timestamp.
type IHistory interface {
	List(ctx context.Context, room domain.RoomID) ([]domain.Message, error)
}

// ChatService is what the chat screen talks to, on behalf of the logged-in user.
type ChatService struct {
	synchronizer *runtime.Synchronizer
	history      IHistory
	index        *search.Index
	sessions     contract.ISessionStore
	room         domain.RoomID
	searchLimit  int
}

func NewChatService(synchronizer *runtime.Synchronizer, history IHistory, index *search.Index,
	sessions contract.ISessionStore, room domain.RoomID, searchLimit int) *ChatService {
	return &ChatService{
		synchronizer: synchronizer,
		history:      history,
		index:        index,
		sessions:     sessions,
		room:         room,
		searchLimit:  searchLimit,
	}
}

// Send posts text as the current session user.
func (s *ChatService) Send(ctx context.Context, text string) (domain.Message, error) {
	username, err := s.sessions.Current()
	if err != nil {
		return domain.Message{}, err
	}
	return s.synchronizer.Send(ctx, s.room, username, text)
}

func (s *ChatService) History(ctx context.Context) ([]domain.Message, error) {
	return s.history.List(ctx, s.room)
}

func (s *ChatService) Search(ctx context.Context, text string) ([]domain.Message, error) {
	if text == "" {
		return nil, errors.ErrEmptyMessage
	}
	return s.index.Search(ctx, text, s.searchLimit)
}
