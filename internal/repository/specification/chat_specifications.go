package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByConversationID filters messages belonging to a conversation
type ByConversationID struct {
	ConversationID uuid.UUID
}

func (s ByConversationID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("conversation_id = ?", s.ConversationID)
}

// OwnedBy filters conversations by their caller identity
type OwnedBy struct {
	UserID string
}

func (s OwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}

// RoleIs filters messages by author role
type RoleIs struct {
	Role string
}

func (s RoleIs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("role = ?", s.Role)
}
