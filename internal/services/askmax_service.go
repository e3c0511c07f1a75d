package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"maxdata/internal/askmax"
	"maxdata/internal/repositories"
)

type AskMaxService struct {
	Sessions  repositories.SessionStore
	PhotoPool []string
	now       func() time.Time
}

func NewAskMaxService(sessions repositories.SessionStore, photoPool []string) *AskMaxService {
	return &AskMaxService{Sessions: sessions, PhotoPool: photoPool, now: time.Now}
}

// SessionView is a conversation plus what the chat needs to render it.
type SessionView struct {
	*askmax.Conversation
	StatusBar   string              `json:"status_bar"`
	Suggestions []askmax.Suggestion `json:"suggestions"`
}

func (s *AskMaxService) view(conv *askmax.Conversation) SessionView {
	return SessionView{
		Conversation: conv,
		StatusBar:    conv.StatusBar(),
		Suggestions:  conv.Suggestions(s.now()),
	}
}

// Start opens a new session. Nothing is stored when the prompt is rejected.
func (s *AskMaxService) Start(ctx context.Context, prompt, suggestion string) (SessionView, error) {
	now := s.now()
	conv := askmax.New(uuid.NewString(), now)
	if err := conv.Start(prompt, suggestion, s.PhotoPool, now); err != nil {
		return SessionView{}, err
	}
	if err := s.Sessions.Save(ctx, conv); err != nil {
		return SessionView{}, err
	}
	return s.view(conv), nil
}

func (s *AskMaxService) Get(ctx context.Context, id string) (SessionView, error) {
	conv, err := s.Sessions.Load(ctx, id)
	if err != nil {
		return SessionView{}, err
	}
	return s.view(conv), nil
}

func (s *AskMaxService) Reply(ctx context.Context, id, answer string) (SessionView, error) {
	conv, err := s.Sessions.Load(ctx, id)
	if err != nil {
		return SessionView{}, err
	}
	if err := conv.Reply(answer, s.now()); err != nil {
		return SessionView{}, err
	}
	if err := s.Sessions.Save(ctx, conv); err != nil {
		return SessionView{}, err
	}
	return s.view(conv), nil
}

// Continue closes the session and returns the conversation holding the
// listing handed over to the editor.
func (s *AskMaxService) Continue(ctx context.Context, id string) (SessionView, error) {
	conv, err := s.Sessions.Load(ctx, id)
	if err != nil {
		return SessionView{}, err
	}
	if _, err := conv.Continue(s.now()); err != nil {
		return SessionView{}, err
	}
	if err := s.Sessions.Delete(ctx, id); err != nil {
		return SessionView{}, err
	}
	return s.view(conv), nil
}
