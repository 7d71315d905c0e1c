package contract

import (
	"context"

	"github.com/google/uuid"

	"legal-assistant-be/internal/entity"
	"legal-assistant-be/internal/repository/specification"
)

type DecisionRepository interface {
	Create(ctx context.Context, decision *entity.Decision) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Decision, error)
	Find(ctx context.Context, specs ...specification.Specification) ([]*entity.Decision, error)

	// SearchLexical ranks decisions against the query with Turkish full-text
	// search, falling back to ILIKE matching when nothing ranks.
	SearchLexical(ctx context.Context, query string, limit int) ([]*entity.Decision, error)
}
