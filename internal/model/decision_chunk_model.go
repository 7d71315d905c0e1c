package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

type DecisionChunk struct {
	Id         uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	DecisionId uuid.UUID       `gorm:"type:uuid;not null;index"`
	ChunkIndex int             `gorm:"default:0"`
	Section    string          `gorm:"type:text"`
	ChunkText  string          `gorm:"type:text"`
	Embedding  pgvector.Vector `gorm:"type:vector(768)"` // Gemini embedding models use 768 dimensions
	CreatedAt  time.Time       `gorm:"autoCreateTime"`
}

func (DecisionChunk) TableName() string {
	return "decision_chunks"
}
