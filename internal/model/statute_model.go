package model

import "github.com/google/uuid"

type ConstitutionArticle struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ArticleNo int       `gorm:"not null;index"`
	Title     string    `gorm:"type:text"`
	Content   string    `gorm:"type:text"`
	Rationale string    `gorm:"type:text"`
}

func (ConstitutionArticle) TableName() string {
	return "constitution_articles"
}

type PenalCodeArticle struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ArticleNo int       `gorm:"not null;index"`
	Title     string    `gorm:"type:text"`
	Content   string    `gorm:"type:text"`
}

func (PenalCodeArticle) TableName() string {
	return "penal_code_articles"
}
