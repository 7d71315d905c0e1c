package contract

import (
	"context"

	"github.com/google/uuid"

	"legal-assistant-be/internal/entity"
	"legal-assistant-be/internal/repository/specification"
)

type MessageRepository interface {
	Create(ctx context.Context, message *entity.Message) error
	Find(ctx context.Context, specs ...specification.Specification) ([]*entity.Message, error)
	CountByConversation(ctx context.Context, conversationId uuid.UUID) (int64, error)

	// CountUserMessagesToday counts the user-authored messages a caller sent
	// today across every conversation they own, soft-deleted ones included.
	// Deleting a conversation must not refund quota.
	CountUserMessagesToday(ctx context.Context, userId string) (int64, error)
}
