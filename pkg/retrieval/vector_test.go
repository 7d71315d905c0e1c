package retrieval

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"legal-assistant-be/internal/entity"
	"legal-assistant-be/internal/repository/contract"
	"legal-assistant-be/internal/repository/specification"
	"legal-assistant-be/pkg/embedding"
)

type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }

type stubEmbedder struct {
	values []float32
	err    error
	delay  time.Duration
	calls  int
}

func (s *stubEmbedder) Generate(text string, taskType string) (*embedding.EmbeddingResponse, error) {
	s.calls++
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	if s.err != nil {
		return nil, s.err
	}
	return &embedding.EmbeddingResponse{
		Embedding: embedding.EmbeddingResponseEmbedding{Values: s.values},
	}, nil
}

type stubChunkRepo struct {
	results []*contract.SearchedChunk
	err     error
}

func (s *stubChunkRepo) CreateBatch(ctx context.Context, decisionId uuid.UUID, chunks []contract.ChunkInput) error {
	return nil
}

func (s *stubChunkRepo) SearchByVector(ctx context.Context, embedding []float32, limit int) ([]*contract.SearchedChunk, error) {
	return s.results, s.err
}

func (s *stubChunkRepo) DeleteByDecision(ctx context.Context, decisionId uuid.UUID) error {
	return nil
}

type stubDecisionRepo struct {
	results []*entity.Decision
	err     error
}

func (s *stubDecisionRepo) Create(ctx context.Context, decision *entity.Decision) error { return nil }

func (s *stubDecisionRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Decision, error) {
	return nil, nil
}

func (s *stubDecisionRepo) Find(ctx context.Context, specs ...specification.Specification) ([]*entity.Decision, error) {
	return s.results, s.err
}

func (s *stubDecisionRepo) SearchLexical(ctx context.Context, query string, limit int) ([]*entity.Decision, error) {
	return s.results, s.err
}

func newTestVectorSearcher(chunks contract.DecisionChunkRepository, embedder embedding.EmbeddingProvider, decisions contract.DecisionRepository, timeout time.Duration) *VectorSearcher {
	fallback := NewLexicalSearcher(decisions, noopLogger{})
	return NewVectorSearcher(chunks, embedder, fallback, noopLogger{}, timeout)
}

func TestVectorSearchReturnsChunkFragments(t *testing.T) {
	decisionId := uuid.New()
	chunks := &stubChunkRepo{results: []*contract.SearchedChunk{
		{DecisionId: decisionId, ChunkIndex: 3, Section: "gerekce", ChunkText: "karar metni", Title: "Başvuru", Distance: 0.12},
	}}
	embedder := &stubEmbedder{values: []float32{0.1, 0.2}}

	s := newTestVectorSearcher(chunks, embedder, &stubDecisionRepo{}, time.Second)
	results := s.Search(context.Background(), "tazminat davası", 5)

	require.Len(t, results, 1)
	assert.Equal(t, decisionId, results[0].DecisionId)
	assert.Equal(t, 3, results[0].ChunkIndex)
	assert.Equal(t, "karar metni", results[0].Text)
	assert.Equal(t, 0.12, results[0].Distance)
}

func TestVectorSearchFallsBackOnEmbeddingError(t *testing.T) {
	decisions := &stubDecisionRepo{results: []*entity.Decision{
		{Id: uuid.New(), Title: "AYM Kararı", FullText: "tam metin"},
	}}
	embedder := &stubEmbedder{err: fmt.Errorf("quota exhausted")}

	s := newTestVectorSearcher(&stubChunkRepo{}, embedder, decisions, time.Second)
	results := s.Search(context.Background(), "tazminat davası", 5)

	require.Len(t, results, 1)
	assert.Equal(t, SectionFullText, results[0].Section)
	assert.Equal(t, 0, results[0].ChunkIndex)
	assert.Equal(t, 1.0, results[0].Distance)
}

func TestVectorSearchFallsBackOnTimeout(t *testing.T) {
	decisions := &stubDecisionRepo{results: []*entity.Decision{
		{Id: uuid.New(), Title: "AYM Kararı", FullText: "tam metin"},
	}}
	embedder := &stubEmbedder{values: []float32{0.1}, delay: 200 * time.Millisecond}

	s := newTestVectorSearcher(&stubChunkRepo{}, embedder, decisions, 20*time.Millisecond)
	results := s.Search(context.Background(), "tazminat davası", 5)

	require.Len(t, results, 1)
	assert.Equal(t, SectionFullText, results[0].Section)
}

func TestVectorSearchFallsBackOnSearchError(t *testing.T) {
	decisions := &stubDecisionRepo{results: []*entity.Decision{
		{Id: uuid.New(), Title: "AYM Kararı", FullText: "tam metin"},
	}}
	chunks := &stubChunkRepo{err: fmt.Errorf("connection refused")}
	embedder := &stubEmbedder{values: []float32{0.1}}

	s := newTestVectorSearcher(chunks, embedder, decisions, time.Second)
	results := s.Search(context.Background(), "tazminat davası", 5)

	require.Len(t, results, 1)
	assert.Equal(t, SectionFullText, results[0].Section)
}

func TestVectorSearchCachesQueryEmbedding(t *testing.T) {
	embedder := &stubEmbedder{values: []float32{0.1}}
	s := newTestVectorSearcher(&stubChunkRepo{}, embedder, &stubDecisionRepo{}, time.Second)

	s.Search(context.Background(), "aynı soru", 5)
	s.Search(context.Background(), "aynı soru", 5)

	assert.Equal(t, 1, embedder.calls)
}

func TestVectorSearchEmptyResultIsNotAnError(t *testing.T) {
	embedder := &stubEmbedder{values: []float32{0.1}}
	s := newTestVectorSearcher(&stubChunkRepo{}, embedder, &stubDecisionRepo{}, time.Second)

	results := s.Search(context.Background(), "hiç eşleşmeyen soru", 5)
	assert.Empty(t, results)
}
