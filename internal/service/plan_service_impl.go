package service

import (
	"context"
	"sync"

	"github.com/itinerolabs/itinero/internal/domain"
	"github.com/itinerolabs/itinero/internal/planner"
)

type planService struct {
	client   planner.Client
	sessions SessionService

	mu       sync.Mutex
	inFlight map[string]bool
	// gen bumps when a session ends; a turn that started under an older
	// generation must discard its result instead of applying it.
	gen map[string]int
}

func NewPlanService(client planner.Client, sessions SessionService) PlanService {
	return &planService{
		client:   client,
		sessions: sessions,
		inFlight: make(map[string]bool),
		gen:      make(map[string]int),
	}
}

func (s *planService) CreatePlan(ctx context.Context, req domain.PlanRequest) (*domain.Session, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	result, err := s.client.FetchPlan(ctx, req)
	if err != nil {
		return nil, err
	}

	return s.sessions.Create(ctx, result.SessionID, req.Origin, req.Destination, result.Bundle, result.NarrativeSummary)
}

func (s *planService) SendMessage(ctx context.Context, sessionID, message string) (*ChatOutcome, error) {
	s.mu.Lock()
	if s.inFlight[sessionID] {
		s.mu.Unlock()
		return nil, ErrTurnInFlight
	}
	s.inFlight[sessionID] = true
	startGen := s.gen[sessionID]
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.inFlight, sessionID)
		s.mu.Unlock()
	}()

	result, err := s.client.SendChatTurn(ctx, sessionID, message)
	if err != nil {
		return nil, err
	}

	// The session may have ended while the turn was in flight.
	s.mu.Lock()
	live := s.gen[sessionID] == startGen
	s.mu.Unlock()
	if !live {
		return nil, ErrSessionEnded
	}

	if err := s.sessions.AppendChatTurn(ctx, sessionID, message, result.Reply); err != nil {
		return nil, err
	}

	outcome := &ChatOutcome{Reply: result.Reply}
	if result.Bundle != nil {
		session, err := s.sessions.ApplyBundleReplacement(ctx, sessionID, *result.Bundle)
		if err != nil {
			return nil, err
		}
		outcome.Session = session
		outcome.PlanUpdated = true
	} else {
		session, err := s.sessions.GetByID(ctx, sessionID)
		if err != nil {
			return nil, err
		}
		outcome.Session = session
	}
	return outcome, nil
}

func (s *planService) EndSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	s.gen[sessionID]++
	s.mu.Unlock()

	// Upstream cleanup is best effort; local state is authoritative.
	_ = s.client.EndSession(ctx, sessionID)

	return s.sessions.Delete(ctx, sessionID)
}

func (s *planService) PlannerAvailable(ctx context.Context) bool {
	return s.client.Available(ctx)
}
