package contract

import (
	"context"

	"legal-assistant-be/internal/entity"
)

type StatuteRepository interface {
	CreateConstitutionArticle(ctx context.Context, article *entity.ConstitutionArticle) error
	CreatePenalCodeArticle(ctx context.Context, article *entity.PenalCodeArticle) error
	SearchConstitution(ctx context.Context, query string, limit int) ([]*entity.ConstitutionArticle, error)
	SearchPenalCode(ctx context.Context, query string, limit int) ([]*entity.PenalCodeArticle, error)
}
