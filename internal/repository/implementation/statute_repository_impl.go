package implementation

import (
	"context"
	"strconv"

	"gorm.io/gorm"

	"legal-assistant-be/internal/entity"
	"legal-assistant-be/internal/mapper"
	"legal-assistant-be/internal/model"
	"legal-assistant-be/internal/repository/contract"
)

type StatuteRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.StatuteMapper
}

func NewStatuteRepository(db *gorm.DB) contract.StatuteRepository {
	return &StatuteRepositoryImpl{
		db:     db,
		mapper: mapper.NewStatuteMapper(),
	}
}

func (r *StatuteRepositoryImpl) CreateConstitutionArticle(ctx context.Context, article *entity.ConstitutionArticle) error {
	m := r.mapper.ConstitutionArticleToModel(article)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*article = *r.mapper.ConstitutionArticleToEntity(m)
	return nil
}

func (r *StatuteRepositoryImpl) CreatePenalCodeArticle(ctx context.Context, article *entity.PenalCodeArticle) error {
	m := r.mapper.PenalCodeArticleToModel(article)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*article = *r.mapper.PenalCodeArticleToEntity(m)
	return nil
}

// statuteQuery matches either the article number, when the query contains
// one, or the title/content text.
func statuteQuery(db *gorm.DB, query string) *gorm.DB {
	if articleNo, err := strconv.Atoi(query); err == nil {
		return db.Where("article_no = ?", articleNo)
	}
	pattern := "%" + query + "%"
	return db.Where("title ILIKE ? OR content ILIKE ?", pattern, pattern)
}

func (r *StatuteRepositoryImpl) SearchConstitution(ctx context.Context, query string, limit int) ([]*entity.ConstitutionArticle, error) {
	if limit <= 0 {
		limit = 3
	}

	var models []*model.ConstitutionArticle
	err := statuteQuery(r.db.WithContext(ctx), query).
		Order("article_no ASC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	entities := make([]*entity.ConstitutionArticle, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ConstitutionArticleToEntity(m)
	}
	return entities, nil
}

func (r *StatuteRepositoryImpl) SearchPenalCode(ctx context.Context, query string, limit int) ([]*entity.PenalCodeArticle, error) {
	if limit <= 0 {
		limit = 3
	}

	var models []*model.PenalCodeArticle
	err := statuteQuery(r.db.WithContext(ctx), query).
		Order("article_no ASC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	entities := make([]*entity.PenalCodeArticle, len(models))
	for i, m := range models {
		entities[i] = r.mapper.PenalCodeArticleToEntity(m)
	}
	return entities, nil
}
