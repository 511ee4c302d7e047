package repository

import (
	"context"

	"github.com/itinerolabs/itinero/internal/domain"
)

// SessionRepo persists planning sessions and their chat history.
//
// A session row carries the result bundle as a single JSON document plus a
// revision counter; chat messages live in their own append-only table.
type SessionRepo interface {
	// Create inserts a session along with any seeded chat messages.
	Create(ctx context.Context, s *domain.Session) error

	// GetByID loads a session including its full chat history.
	GetByID(ctx context.Context, id string) (*domain.Session, error)

	// List returns all sessions ordered by most recently updated.
	// Chat history is not loaded.
	List(ctx context.Context) ([]*domain.Session, error)

	// ReplaceBundle overwrites the session's bundle document and revision.
	// The narrative summary and chat history are untouched.
	ReplaceBundle(ctx context.Context, id string, bundle domain.Bundle, revision int) error

	// AppendChatMessage adds one message to the session's history.
	AppendChatMessage(ctx context.Context, sessionID string, m domain.ChatMessage) error

	// Delete removes a session and, via cascade, its chat messages.
	Delete(ctx context.Context, id string) error
}
