package retrieval

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type stubSearcher struct {
	results []*Fragment
}

func (s *stubSearcher) Search(ctx context.Context, query string, limit int) []*Fragment {
	if limit < len(s.results) {
		return s.results[:limit]
	}
	return s.results
}

func frag(id uuid.UUID, chunkIndex int, distance float64) *Fragment {
	return &Fragment{
		DecisionId: id,
		ChunkIndex: chunkIndex,
		Distance:   distance,
	}
}

func TestHybridSearchMergesBothPaths(t *testing.T) {
	a, b := uuid.New(), uuid.New()

	vector := &stubSearcher{results: []*Fragment{frag(a, 1, 0.2), frag(a, 2, 0.3)}}
	lexical := &stubSearcher{results: []*Fragment{frag(b, 0, 1)}}

	results := NewHybridSearcher(vector, lexical).Search(context.Background(), "tazminat", 5)

	assert.Len(t, results, 3)
	assert.Equal(t, a, results[0].DecisionId)
	assert.Equal(t, b, results[2].DecisionId)
}

func TestHybridSearchPrefersVectorOnDuplicate(t *testing.T) {
	a := uuid.New()

	vector := &stubSearcher{results: []*Fragment{frag(a, 0, 0.1)}}
	lexical := &stubSearcher{results: []*Fragment{frag(a, 0, 1)}}

	results := NewHybridSearcher(vector, lexical).Search(context.Background(), "tazminat", 5)

	assert.Len(t, results, 1)
	assert.Equal(t, 0.1, results[0].Distance)
}

func TestHybridSearchSplitsBudget(t *testing.T) {
	many := make([]*Fragment, 10)
	for i := range many {
		many[i] = frag(uuid.New(), 0, 0.5)
	}

	vector := &stubSearcher{results: many}
	lexical := &stubSearcher{results: many[:0]}

	// Odd limit: each path gets ceil(5/2) = 3
	results := NewHybridSearcher(vector, lexical).Search(context.Background(), "tazminat", 5)
	assert.Len(t, results, 3)
}

func TestHybridSearchTruncatesToLimit(t *testing.T) {
	vector := &stubSearcher{results: []*Fragment{frag(uuid.New(), 0, 0.1), frag(uuid.New(), 0, 0.2)}}
	lexical := &stubSearcher{results: []*Fragment{frag(uuid.New(), 0, 1), frag(uuid.New(), 0, 1)}}

	results := NewHybridSearcher(vector, lexical).Search(context.Background(), "tazminat", 3)
	assert.Len(t, results, 3)
}

func TestHybridSearchDefaultsLimit(t *testing.T) {
	vector := &stubSearcher{}
	lexical := &stubSearcher{results: []*Fragment{frag(uuid.New(), 0, 1)}}

	results := NewHybridSearcher(vector, lexical).Search(context.Background(), "tazminat", 0)
	assert.Len(t, results, 1)
}
