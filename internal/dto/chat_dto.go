package dto

import (
	"time"

	"github.com/google/uuid"
)

type SendChatRequest struct {
	ConversationId *uuid.UUID `json:"conversation_id,omitempty"`
	Message        string     `json:"message" validate:"required"`
}

type SentMessageDTO struct {
	Id        uuid.UUID `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Ordinal   int       `json:"ordinal"`
	CreatedAt time.Time `json:"created_at"`
}

type SendChatResponse struct {
	ConversationId    uuid.UUID       `json:"conversation_id"`
	ConversationTitle string          `json:"title"`
	Sent              *SentMessageDTO `json:"sent"`
	Reply             *SentMessageDTO `json:"reply"`
	DailyUsage        int             `json:"dailyUsage"`
}

type CreateConversationRequest struct {
	Title string `json:"title,omitempty"`
}

type ConversationResponse struct {
	Id           uuid.UUID  `json:"id"`
	Title        string     `json:"title"`
	MessageCount int        `json:"message_count"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at"`
}

type ConversationListResponse struct {
	Conversations []*ConversationResponse `json:"conversations"`
	DailyUsage    int                     `json:"dailyUsage"`
	DailyLimit    int                     `json:"dailyLimit"`
	IsAdmin       bool                    `json:"isAdmin"`
}

type ConversationDetailResponse struct {
	Conversation *ConversationResponse `json:"conversation"`
	Messages     []*SentMessageDTO     `json:"messages"`
}
