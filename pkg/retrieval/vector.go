package retrieval

import (
	"context"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"legal-assistant-be/internal/pkg/logger"
	"legal-assistant-be/internal/repository/contract"
	"legal-assistant-be/pkg/embedding"
)

const (
	embeddingCacheTTL     = 5 * time.Minute
	defaultEmbedTimeout   = 10 * time.Second
	embeddingCacheCleanup = 10 * time.Minute
)

// VectorSearcher embeds the query and ranks decision chunks by cosine
// distance. Any failure on the embedding or database side drops down to the
// lexical searcher; callers always get an answer path.
type VectorSearcher struct {
	chunks       contract.DecisionChunkRepository
	embedder     embedding.EmbeddingProvider
	fallback     *LexicalSearcher
	logger       logger.ILogger
	embedTimeout time.Duration
	cache        *gocache.Cache
}

var _ Searcher = &VectorSearcher{}

func NewVectorSearcher(
	chunks contract.DecisionChunkRepository,
	embedder embedding.EmbeddingProvider,
	fallback *LexicalSearcher,
	log logger.ILogger,
	embedTimeout time.Duration,
) *VectorSearcher {
	if embedTimeout <= 0 {
		embedTimeout = defaultEmbedTimeout
	}
	return &VectorSearcher{
		chunks:       chunks,
		embedder:     embedder,
		fallback:     fallback,
		logger:       log,
		embedTimeout: embedTimeout,
		cache:        gocache.New(embeddingCacheTTL, embeddingCacheCleanup),
	}
}

func (s *VectorSearcher) Search(ctx context.Context, query string, limit int) []*Fragment {
	vector, err := s.embedQuery(ctx, query)
	if err != nil {
		s.logger.Warn("Retrieval", "Query embedding failed, using lexical fallback", map[string]interface{}{
			"error": err.Error(),
		})
		return s.fallback.Search(ctx, query, limit)
	}

	results, err := s.chunks.SearchByVector(ctx, vector, limit)
	if err != nil {
		s.logger.Error("Retrieval", "Vector search failed, using lexical fallback", map[string]interface{}{
			"error": err.Error(),
		})
		return s.fallback.Search(ctx, query, limit)
	}

	fragments := make([]*Fragment, len(results))
	for i, c := range results {
		fragments[i] = fragmentFromChunk(c)
	}
	return fragments
}

type embedResult struct {
	values []float32
	err    error
}

// embedQuery bounds the provider call with a timeout. The provider API has
// no context parameter, so the call runs in a goroutine and the slow result
// is abandoned.
func (s *VectorSearcher) embedQuery(ctx context.Context, query string) ([]float32, error) {
	if cached, found := s.cache.Get(query); found {
		return cached.([]float32), nil
	}

	resultCh := make(chan embedResult, 1)
	go func() {
		res, err := s.embedder.Generate(query, embedding.TaskTypeRetrievalQuery)
		if err != nil {
			resultCh <- embedResult{err: err}
			return
		}
		if len(res.Embedding.Values) == 0 {
			resultCh <- embedResult{err: fmt.Errorf("provider returned empty embedding")}
			return
		}
		resultCh <- embedResult{values: res.Embedding.Values}
	}()

	select {
	case res := <-resultCh:
		if res.err != nil {
			return nil, res.err
		}
		s.cache.Set(query, res.values, gocache.DefaultExpiration)
		return res.values, nil
	case <-time.After(s.embedTimeout):
		return nil, fmt.Errorf("embedding timed out after %s", s.embedTimeout)
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
