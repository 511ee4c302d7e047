package service

import (
	"context"
	"errors"

	"github.com/itinerolabs/itinero/internal/domain"
	"github.com/itinerolabs/itinero/internal/itinerary"
)

var (
	// ErrTurnInFlight indicates a session already has an upstream operation
	// in progress. At most one runs per session at a time.
	ErrTurnInFlight = errors.New("a turn is already in flight for this session")

	// ErrSessionEnded indicates the session was ended while an upstream
	// operation was running; its result has been discarded.
	ErrSessionEnded = errors.New("session has ended")
)

// SessionService owns local session state: creation, chat history, bundle
// replacement, and derivation of the day-by-day plan.
type SessionService interface {
	// Create stores a new session. The narrative summary is pinned here and
	// never changes afterwards. The chat history starts with one assistant
	// message introducing the plan.
	Create(ctx context.Context, id, origin, destination string, bundle domain.Bundle, summary string) (*domain.Session, error)

	GetByID(ctx context.Context, id string) (*domain.Session, error)
	List(ctx context.Context) ([]*domain.Session, error)

	// ApplyBundleReplacement swaps the session's bundle wholesale and bumps
	// the revision by exactly one. Summary and chat history are untouched.
	ApplyBundleReplacement(ctx context.Context, id string, bundle domain.Bundle) (*domain.Session, error)

	// AppendChatTurn records a user message and the assistant's reply.
	AppendChatTurn(ctx context.Context, id, userText, assistantText string) error

	// DayPlans derives the day-by-day itinerary from the session's current
	// bundle. Pure recomputation; no state changes.
	DayPlans(s *domain.Session) ([]itinerary.DayPlan, error)

	Delete(ctx context.Context, id string) error
}

// ChatOutcome is what a conversational turn produced.
type ChatOutcome struct {
	Reply       string
	Session     *domain.Session
	PlanUpdated bool
}

// PlanService orchestrates the upstream planning service against local
// session state.
type PlanService interface {
	// CreatePlan requests a full plan upstream and stores it as a new session.
	CreatePlan(ctx context.Context, req domain.PlanRequest) (*domain.Session, error)

	// SendMessage runs one conversational turn. If the upstream reply carries
	// a new plan, the session's bundle is replaced and PlanUpdated is true.
	// Upstream failure leaves the session exactly as it was.
	SendMessage(ctx context.Context, sessionID, message string) (*ChatOutcome, error)

	// EndSession discards the session locally and upstream.
	EndSession(ctx context.Context, sessionID string) error

	// PlannerAvailable checks whether the upstream service is reachable.
	PlannerAvailable(ctx context.Context) bool
}
