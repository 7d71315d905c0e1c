package dto

import "github.com/google/uuid"

// PublishEmbedDecisionMessage asks the consumer to (re)build chunk
// embeddings for a decision.
type PublishEmbedDecisionMessage struct {
	DecisionId uuid.UUID `json:"decision_id"`
}
