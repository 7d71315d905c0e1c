package implementation

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"legal-assistant-be/internal/entity"
	"legal-assistant-be/internal/mapper"
	"legal-assistant-be/internal/model"
	"legal-assistant-be/internal/repository/contract"
	"legal-assistant-be/internal/repository/specification"
)

type DecisionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.DecisionMapper
}

func NewDecisionRepository(db *gorm.DB) contract.DecisionRepository {
	return &DecisionRepositoryImpl{
		db:     db,
		mapper: mapper.NewDecisionMapper(),
	}
}

func (r *DecisionRepositoryImpl) Create(ctx context.Context, decision *entity.Decision) error {
	m := r.mapper.ToModel(decision)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*decision = *r.mapper.ToEntity(m)
	return nil
}

func (r *DecisionRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*entity.Decision, error) {
	var m model.Decision
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *DecisionRepositoryImpl) Find(ctx context.Context, specs ...specification.Specification) ([]*entity.Decision, error) {
	db := r.db.WithContext(ctx)
	for _, spec := range specs {
		db = spec.Apply(db)
	}

	var models []*model.Decision
	if err := db.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

// lexicalDocument is the searchable text of a decision: metadata columns
// included so party and court names rank alongside the body.
const lexicalDocument = "coalesce(title, '') || ' ' || coalesce(summary, '') || ' ' || coalesce(applicant, '') || ' ' || coalesce(court, '') || ' ' || coalesce(full_text, '')"

func (r *DecisionRepositoryImpl) SearchLexical(ctx context.Context, query string, limit int) ([]*entity.Decision, error) {
	if limit <= 0 {
		limit = 5
	}

	var models []*model.Decision

	// Turkish full-text ranking first. ts_rank orders by how well the whole
	// document matches, which beats raw ILIKE for multi-word queries; equal
	// ranks break toward the newest decision.
	err := r.db.WithContext(ctx).
		Table("decisions").
		Select("decisions.*, ts_rank(to_tsvector('turkish', "+lexicalDocument+"), plainto_tsquery('turkish', ?)) AS rank", query).
		Where("to_tsvector('turkish', "+lexicalDocument+") @@ plainto_tsquery('turkish', ?)", query).
		Where("decisions.deleted_at IS NULL").
		Order("rank DESC, decision_date DESC NULLS LAST").
		Limit(limit).
		Scan(&models).Error
	if err != nil {
		return nil, err
	}

	if len(models) == 0 {
		// Stemmer missed everything, fall back to substring matching.
		pattern := "%" + query + "%"
		err = r.db.WithContext(ctx).
			Where("title ILIKE ? OR summary ILIKE ? OR applicant ILIKE ? OR court ILIKE ? OR full_text ILIKE ?", pattern, pattern, pattern, pattern, pattern).
			Order("decision_date DESC NULLS LAST").
			Limit(limit).
			Find(&models).Error
		if err != nil {
			return nil, err
		}
	}

	return r.mapper.ToEntities(models), nil
}
