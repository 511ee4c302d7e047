package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/itinerolabs/itinero/internal/domain"
	"github.com/itinerolabs/itinero/internal/itinerary"
	"github.com/itinerolabs/itinero/internal/repository"
)

type sessionService struct {
	sessions repository.SessionRepo
}

func NewSessionService(sessions repository.SessionRepo) SessionService {
	return &sessionService{sessions: sessions}
}

func (s *sessionService) Create(ctx context.Context, id, origin, destination string, bundle domain.Bundle, summary string) (*domain.Session, error) {
	if id == "" {
		id = uuid.New().String()
	}
	if destination == "" {
		return nil, fmt.Errorf("destination is required")
	}

	now := time.Now().UTC()
	greeting := summary
	if greeting == "" {
		greeting = "Your plan for " + destination + " is ready. Ask me anything about it."
	}

	session := &domain.Session{
		ID:               id,
		Origin:           origin,
		Destination:      destination,
		Bundle:           bundle,
		NarrativeSummary: summary,
		ChatHistory: []domain.ChatMessage{{
			ID:        uuid.New().String(),
			Role:      domain.RoleAssistant,
			Text:      greeting,
			CreatedAt: now,
		}},
		Revision:  0,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *sessionService) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	return s.sessions.GetByID(ctx, id)
}

func (s *sessionService) List(ctx context.Context) ([]*domain.Session, error) {
	return s.sessions.List(ctx)
}

func (s *sessionService) ApplyBundleReplacement(ctx context.Context, id string, bundle domain.Bundle) (*domain.Session, error) {
	session, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	newRevision := session.Revision + 1
	if err := s.sessions.ReplaceBundle(ctx, id, bundle, newRevision); err != nil {
		return nil, err
	}

	session.Bundle = bundle
	session.Revision = newRevision
	session.UpdatedAt = time.Now().UTC()
	return session, nil
}

func (s *sessionService) AppendChatTurn(ctx context.Context, id, userText, assistantText string) error {
	now := time.Now().UTC()
	userMsg := domain.ChatMessage{
		ID:        uuid.New().String(),
		Role:      domain.RoleUser,
		Text:      userText,
		CreatedAt: now,
	}
	if err := s.sessions.AppendChatMessage(ctx, id, userMsg); err != nil {
		return err
	}

	assistantMsg := domain.ChatMessage{
		ID:        uuid.New().String(),
		Role:      domain.RoleAssistant,
		Text:      assistantText,
		CreatedAt: now,
	}
	return s.sessions.AppendChatMessage(ctx, id, assistantMsg)
}

func (s *sessionService) DayPlans(session *domain.Session) ([]itinerary.DayPlan, error) {
	return itinerary.Synthesize(session.Bundle)
}

func (s *sessionService) Delete(ctx context.Context, id string) error {
	return s.sessions.Delete(ctx, id)
}
