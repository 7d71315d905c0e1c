package entity

import "github.com/google/uuid"

// ConstitutionArticle is a constitutional provision with its rationale.
type ConstitutionArticle struct {
	Id        uuid.UUID
	ArticleNo int
	Title     string
	Content   string
	Rationale string
}

// PenalCodeArticle is a penal-code provision.
type PenalCodeArticle struct {
	Id        uuid.UUID
	ArticleNo int
	Title     string
	Content   string
}
