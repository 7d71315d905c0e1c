package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Decision struct {
	Id           uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title        string         `gorm:"type:text;not null"`
	Court        string         `gorm:"type:text"`
	DecisionDate *time.Time     `gorm:"index"`
	FilingNo     string         `gorm:"type:text"`
	Applicant    string         `gorm:"type:text"`
	Summary      string         `gorm:"type:text"`
	FullText     string         `gorm:"type:text"`
	CreatedAt    time.Time      `gorm:"autoCreateTime"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime"`
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

func (Decision) TableName() string {
	return "decisions"
}
