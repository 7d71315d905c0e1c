package implementation

import (
	"context"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"

	"legal-assistant-be/internal/model"
	"legal-assistant-be/internal/repository/contract"
)

type DecisionChunkRepositoryImpl struct {
	db *gorm.DB
}

func NewDecisionChunkRepository(db *gorm.DB) contract.DecisionChunkRepository {
	return &DecisionChunkRepositoryImpl{db: db}
}

func (r *DecisionChunkRepositoryImpl) CreateBatch(ctx context.Context, decisionId uuid.UUID, chunks []contract.ChunkInput) error {
	if len(chunks) == 0 {
		return nil
	}

	models := make([]*model.DecisionChunk, len(chunks))
	for i, c := range chunks {
		models[i] = &model.DecisionChunk{
			DecisionId: decisionId,
			ChunkIndex: c.ChunkIndex,
			Section:    c.Section,
			ChunkText:  c.ChunkText,
			Embedding:  pgvector.NewVector(c.Embedding),
		}
	}

	return r.db.WithContext(ctx).Create(models).Error
}

func (r *DecisionChunkRepositoryImpl) SearchByVector(ctx context.Context, embedding []float32, limit int) ([]*contract.SearchedChunk, error) {
	if limit <= 0 {
		limit = 5
	}

	type row struct {
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
	var rows []row

	queryVector := pgvector.NewVector(embedding)

	// Cosine distance over chunk embeddings, joined with the parent decision
	// so callers get citable metadata without a second query.
	err := r.db.WithContext(ctx).
		Table("decision_chunks").
		Select(`decision_chunks.decision_id,
			decision_chunks.chunk_index,
			decision_chunks.section,
			decision_chunks.chunk_text,
			decisions.title,
			decisions.court,
			coalesce(to_char(decisions.decision_date, 'DD.MM.YYYY'), '') AS decision_date,
			decisions.filing_no,
			decisions.applicant,
			decisions.summary,
			decision_chunks.embedding <=> ? AS distance`, queryVector).
		Joins("JOIN decisions ON decisions.id = decision_chunks.decision_id").
		Where("decisions.deleted_at IS NULL").
		Order("distance ASC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	results := make([]*contract.SearchedChunk, len(rows))
	for i, res := range rows {
		results[i] = &contract.SearchedChunk{
			DecisionId:   res.DecisionId,
			ChunkIndex:   res.ChunkIndex,
			Section:      res.Section,
			ChunkText:    res.ChunkText,
			Title:        res.Title,
			Court:        res.Court,
			DecisionDate: res.DecisionDate,
			FilingNo:     res.FilingNo,
			Applicant:    res.Applicant,
			Summary:      res.Summary,
			Distance:     res.Distance,
		}
	}
	return results, nil
}

func (r *DecisionChunkRepositoryImpl) DeleteByDecision(ctx context.Context, decisionId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("decision_id = ?", decisionId).Delete(&model.DecisionChunk{}).Error
}
