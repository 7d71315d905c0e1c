package entity

import (
	"time"

	"github.com/google/uuid"
)

// Conversation owns an ordered list of messages. UserId is the opaque caller
// identity derived at the HTTP edge (not an account reference). Conversations
// are never hard-deleted; soft delete hides them from listings but keeps
// their messages countable for quota purposes.
type Conversation struct {
	Id           uuid.UUID
	UserId       string
	Title        string
	MessageCount int
	CreatedAt    time.Time
	UpdatedAt    *time.Time
	DeletedAt    *time.Time
	IsDeleted    bool
}

// Message is append-only. Ordinal is the explicit per-conversation position;
// ordering never relies on wall-clock timestamps.
type Message struct {
	Id             uuid.UUID
	ConversationId uuid.UUID
	Role           string
	Content        string
	Ordinal        int
	CreatedAt      time.Time
}
