package contract

import (
	"context"

	"github.com/google/uuid"

	"legal-assistant-be/internal/entity"
	"legal-assistant-be/internal/repository/specification"
)

type ConversationRepository interface {
	Create(ctx context.Context, conversation *entity.Conversation) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Conversation, error)
	Find(ctx context.Context, specs ...specification.Specification) ([]*entity.Conversation, error)
	Update(ctx context.Context, conversation *entity.Conversation) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
}
