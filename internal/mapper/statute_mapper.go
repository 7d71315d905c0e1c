package mapper

import (
	"legal-assistant-be/internal/entity"
	"legal-assistant-be/internal/model"
)

type StatuteMapper struct{}

func NewStatuteMapper() *StatuteMapper {
	return &StatuteMapper{}
}

func (m *StatuteMapper) ConstitutionArticleToEntity(a *model.ConstitutionArticle) *entity.ConstitutionArticle {
	if a == nil {
		return nil
	}

	return &entity.ConstitutionArticle{
		Id:        a.Id,
		ArticleNo: a.ArticleNo,
		Title:     a.Title,
		Content:   a.Content,
		Rationale: a.Rationale,
	}
}

func (m *StatuteMapper) ConstitutionArticleToModel(a *entity.ConstitutionArticle) *model.ConstitutionArticle {
	if a == nil {
		return nil
	}

	return &model.ConstitutionArticle{
		Id:        a.Id,
		ArticleNo: a.ArticleNo,
		Title:     a.Title,
		Content:   a.Content,
		Rationale: a.Rationale,
	}
}

func (m *StatuteMapper) PenalCodeArticleToEntity(a *model.PenalCodeArticle) *entity.PenalCodeArticle {
	if a == nil {
		return nil
	}

	return &entity.PenalCodeArticle{
		Id:        a.Id,
		ArticleNo: a.ArticleNo,
		Title:     a.Title,
		Content:   a.Content,
	}
}

func (m *StatuteMapper) PenalCodeArticleToModel(a *entity.PenalCodeArticle) *model.PenalCodeArticle {
	if a == nil {
		return nil
	}

	return &model.PenalCodeArticle{
		Id:        a.Id,
		ArticleNo: a.ArticleNo,
		Title:     a.Title,
		Content:   a.Content,
	}
}
