package mapper

import (
	"legal-assistant-be/internal/entity"
	"legal-assistant-be/internal/model"
)

type DecisionMapper struct{}

func NewDecisionMapper() *DecisionMapper {
	return &DecisionMapper{}
}

func (m *DecisionMapper) ToEntity(d *model.Decision) *entity.Decision {
	if d == nil {
		return nil
	}

	return &entity.Decision{
		Id:           d.Id,
		Title:        d.Title,
		Court:        d.Court,
		DecisionDate: d.DecisionDate,
		FilingNo:     d.FilingNo,
		Applicant:    d.Applicant,
		Summary:      d.Summary,
		FullText:     d.FullText,
		CreatedAt:    d.CreatedAt,
	}
}

func (m *DecisionMapper) ToModel(d *entity.Decision) *model.Decision {
	if d == nil {
		return nil
	}

	return &model.Decision{
		Id:           d.Id,
		Title:        d.Title,
		Court:        d.Court,
		DecisionDate: d.DecisionDate,
		FilingNo:     d.FilingNo,
		Applicant:    d.Applicant,
		Summary:      d.Summary,
		FullText:     d.FullText,
		CreatedAt:    d.CreatedAt,
	}
}

func (m *DecisionMapper) ToEntities(models []*model.Decision) []*entity.Decision {
	entities := make([]*entity.Decision, len(models))
	for i, d := range models {
		entities[i] = m.ToEntity(d)
	}
	return entities
}
