package domain

import "time"

// ChatMessage is one turn in a session's conversation.
type ChatMessage struct {
	ID        string
	Role      ChatRole
	Text      string
	CreatedAt time.Time
}

// Session is the unit of conversational plan state. The bundle is replaced
// wholesale whenever the upstream collaborator returns a new one; Revision
// increments exactly once per accepted replacement so views can detect the
// change. NarrativeSummary is pinned at creation and never overwritten.
type Session struct {
	ID               string
	Origin           string
	Destination      string
	Bundle           Bundle
	NarrativeSummary string
	ChatHistory      []ChatMessage
	Revision         int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// DisplayID returns a short identifier for display, truncating UUIDs.
func (s *Session) DisplayID() string {
	if len(s.ID) >= 8 {
		return s.ID[:8]
	}
	return s.ID
}
