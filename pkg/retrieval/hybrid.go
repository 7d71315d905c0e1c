package retrieval

import (
	"context"
	"sync"
)

// HybridSearcher runs the vector and lexical paths side by side, each asked
// for half the budget, and merges the results. Vector hits win ties: a
// decision fragment found by both paths keeps its vector ranking.
type HybridSearcher struct {
	vector  Searcher
	lexical Searcher
}

var _ Searcher = &HybridSearcher{}

func NewHybridSearcher(vector, lexical Searcher) *HybridSearcher {
	return &HybridSearcher{
		vector:  vector,
		lexical: lexical,
	}
}

func (s *HybridSearcher) Search(ctx context.Context, query string, limit int) []*Fragment {
	if limit <= 0 {
		limit = 5
	}
	half := (limit + 1) / 2

	var vectorResults, lexicalResults []*Fragment

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		vectorResults = s.vector.Search(ctx, query, half)
	}()
	go func() {
		defer wg.Done()
		lexicalResults = s.lexical.Search(ctx, query, half)
	}()
	wg.Wait()

	merged := make([]*Fragment, 0, len(vectorResults)+len(lexicalResults))
	seen := make(map[FragmentKey]struct{})
	for _, f := range append(vectorResults, lexicalResults...) {
		key := f.Key()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		merged = append(merged, f)
	}

	if len(merged) > limit {
		merged = merged[:limit]
	}
	return merged
}
