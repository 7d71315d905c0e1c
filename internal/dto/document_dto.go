package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateDecisionRequest struct {
	Title        string `json:"title" validate:"required"`
	Court        string `json:"court,omitempty"`
	DecisionDate string `json:"decision_date,omitempty"` // YYYY-MM-DD
	FilingNo     string `json:"filing_no,omitempty"`
	Applicant    string `json:"applicant,omitempty"`
	Summary      string `json:"summary,omitempty"`
	FullText     string `json:"full_text" validate:"required"`
}

type CreateDecisionResponse struct {
	Id uuid.UUID `json:"id"`
}

type DecisionResponse struct {
	Id           uuid.UUID  `json:"id"`
	Title        string     `json:"title"`
	Court        string     `json:"court,omitempty"`
	DecisionDate *time.Time `json:"decision_date,omitempty"`
	FilingNo     string     `json:"filing_no,omitempty"`
	Applicant    string     `json:"applicant,omitempty"`
	Summary      string     `json:"summary,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

type DecisionListResponse struct {
	Decisions []*DecisionResponse `json:"decisions"`
}

type DecisionDetailResponse struct {
	Decision *DecisionResponse `json:"decision"`
	FullText string            `json:"full_text"`
}

type ConstitutionArticleDTO struct {
	Id        uuid.UUID `json:"id"`
	ArticleNo int       `json:"article_no"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Rationale string    `json:"rationale,omitempty"`
}

type PenalCodeArticleDTO struct {
	Id        uuid.UUID `json:"id"`
	ArticleNo int       `json:"article_no"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
}

type StatuteListResponse struct {
	Constitution []*ConstitutionArticleDTO `json:"constitution"`
	PenalCode    []*PenalCodeArticleDTO    `json:"penal_code"`
}
