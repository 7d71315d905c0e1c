package retrieval

import (
	"context"

	"legal-assistant-be/internal/pkg/logger"
	"legal-assistant-be/internal/repository/contract"
)

// LexicalSearcher matches whole decisions by text and exposes each hit as a
// single full-text fragment with chunk index 0.
type LexicalSearcher struct {
	decisions contract.DecisionRepository
	logger    logger.ILogger
}

var _ Searcher = &LexicalSearcher{}

func NewLexicalSearcher(decisions contract.DecisionRepository, log logger.ILogger) *LexicalSearcher {
	return &LexicalSearcher{
		decisions: decisions,
		logger:    log,
	}
}

func (s *LexicalSearcher) Search(ctx context.Context, query string, limit int) []*Fragment {
	results, err := s.decisions.SearchLexical(ctx, query, limit)
	if err != nil {
		s.logger.Error("Retrieval", "Lexical search failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil
	}

	fragments := make([]*Fragment, len(results))
	for i, d := range results {
		fragments[i] = fragmentFromDecision(d)
	}
	return fragments
}
