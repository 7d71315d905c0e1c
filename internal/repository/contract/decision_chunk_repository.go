package contract

import (
	"context"

	"github.com/google/uuid"
)

// SearchedChunk is a chunk row joined with its parent decision's metadata,
// scored by cosine distance against the query embedding.
type SearchedChunk struct {
	DecisionId   uuid.UUID
	ChunkIndex   int
	Section      string
	ChunkText    string
	Title        string
	Court        string
	DecisionDate string
	FilingNo     string
	Applicant    string
	Summary      string
	Distance     float64
}

type DecisionChunkRepository interface {
	CreateBatch(ctx context.Context, decisionId uuid.UUID, chunks []ChunkInput) error
	SearchByVector(ctx context.Context, embedding []float32, limit int) ([]*SearchedChunk, error)
	DeleteByDecision(ctx context.Context, decisionId uuid.UUID) error
}

type ChunkInput struct {
	ChunkIndex int
	Section    string
	ChunkText  string
	Embedding  []float32
}
