package entity

import (
	"time"

	"github.com/google/uuid"
)

// Decision is a court ruling in the corpus.
type Decision struct {
	Id           uuid.UUID
	Title        string
	Court        string
	DecisionDate *time.Time
	FilingNo     string
	Applicant    string
	Summary      string
	FullText     string
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

// DecisionChunk is an embedded fragment of a decision's full text.
// Chunks are immutable once written; re-ingesting a decision replaces them.
type DecisionChunk struct {
	Id         uuid.UUID
	DecisionId uuid.UUID
	ChunkIndex int
	Section    string
	ChunkText  string
	Embedding  []float32
	CreatedAt  time.Time
}
