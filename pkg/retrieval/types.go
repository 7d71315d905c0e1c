// Package retrieval finds court decision fragments relevant to a query,
// combining vector similarity over chunk embeddings with lexical search over
// whole decisions. Retrieval degrades instead of failing: a searcher that
// cannot produce results returns an empty set so the chat flow continues
// with less context.
package retrieval

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"legal-assistant-be/internal/entity"
	"legal-assistant-be/internal/repository/contract"
)

// SectionFullText marks fragments that carry a whole decision rather than an
// embedded chunk, as produced by the lexical path.
const SectionFullText = "tum_metin"

// lexicalDistance is assigned to fragments the lexical path produced, ranking
// them after any genuine vector match.
const lexicalDistance = 1.0

// Fragment is one retrievable piece of a court decision, denormalized with
// the decision metadata the context assembler cites.
type Fragment struct {
	DecisionId   uuid.UUID
	ChunkIndex   int
	Section      string
	Text         string
	Title        string
	Court        string
	DecisionDate string
	FilingNo     string
	Applicant    string
	Summary      string
	Distance     float64
}

// FragmentKey identifies a fragment for deduplication across search paths.
type FragmentKey string

func (f *Fragment) Key() FragmentKey {
	return FragmentKey(fmt.Sprintf("%s-%d", f.DecisionId, f.ChunkIndex))
}

// Searcher produces ranked fragments for a query. Implementations never
// surface errors; they log and return what they have.
type Searcher interface {
	Search(ctx context.Context, query string, limit int) []*Fragment
}

func fragmentFromChunk(c *contract.SearchedChunk) *Fragment {
	return &Fragment{
		DecisionId:   c.DecisionId,
		ChunkIndex:   c.ChunkIndex,
		Section:      c.Section,
		Text:         c.ChunkText,
		Title:        c.Title,
		Court:        c.Court,
		DecisionDate: c.DecisionDate,
		FilingNo:     c.FilingNo,
		Applicant:    c.Applicant,
		Summary:      c.Summary,
		Distance:     c.Distance,
	}
}

func fragmentFromDecision(d *entity.Decision) *Fragment {
	date := ""
	if d.DecisionDate != nil {
		date = d.DecisionDate.Format("02.01.2006")
	}
	return &Fragment{
		DecisionId:   d.Id,
		ChunkIndex:   0,
		Section:      SectionFullText,
		Text:         d.FullText,
		Title:        d.Title,
		Court:        d.Court,
		DecisionDate: date,
		FilingNo:     d.FilingNo,
		Applicant:    d.Applicant,
		Summary:      d.Summary,
		Distance:     lexicalDistance,
	}
}
