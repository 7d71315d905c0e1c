package unitofwork

import (
	"context"

	"legal-assistant-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	ConversationRepository() contract.ConversationRepository
	MessageRepository() contract.MessageRepository
	DecisionRepository() contract.DecisionRepository
	DecisionChunkRepository() contract.DecisionChunkRepository
	StatuteRepository() contract.StatuteRepository
}
