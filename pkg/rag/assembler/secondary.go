package assembler

import (
	"context"
	"fmt"
	"strings"

	"legal-assistant-be/internal/pkg/logger"
	"legal-assistant-be/internal/repository/contract"
)

const (
	secondaryExcerptLen = 800

	secondaryCaseLimit    = 5
	secondaryStatuteLimit = 3
)

// SecondaryAssembler is the wider, lexical-only net used when the fragment
// context came up empty: ranked decisions plus constitution and penal code
// articles. Each section degrades independently.
type SecondaryAssembler struct {
	decisions contract.DecisionRepository
	statutes  contract.StatuteRepository
	logger    logger.ILogger
}

func NewSecondaryAssembler(decisions contract.DecisionRepository, statutes contract.StatuteRepository, log logger.ILogger) *SecondaryAssembler {
	return &SecondaryAssembler{
		decisions: decisions,
		statutes:  statutes,
		logger:    log,
	}
}

func (a *SecondaryAssembler) Assemble(ctx context.Context, query string) string {
	var b strings.Builder

	a.writeDecisions(ctx, &b, query)
	a.writeConstitution(ctx, &b, query)
	a.writePenalCode(ctx, &b, query)

	return b.String()
}

func (a *SecondaryAssembler) writeDecisions(ctx context.Context, b *strings.Builder, query string) {
	cases, err := a.decisions.SearchLexical(ctx, query, secondaryCaseLimit)
	if err != nil {
		a.logger.Warn("Assembler", "Decision search failed", map[string]interface{}{"error": err.Error()})
		return
	}
	if len(cases) == 0 {
		return
	}

	b.WriteString("İlgili mahkeme kararları:\n\n")
	for i, c := range cases {
		date := ""
		if c.DecisionDate != nil {
			date = c.DecisionDate.Format("02.01.2006")
		}
		fmt.Fprintf(b, "%d. Başlık: %s\n", i+1, c.Title)
		fmt.Fprintf(b, "   Mahkeme: %s\n", c.Court)
		fmt.Fprintf(b, "   Başvuru No: %s\n", c.FilingNo)
		fmt.Fprintf(b, "   Tarih: %s\n", date)
		fmt.Fprintf(b, "   Başvurucu: %s\n", c.Applicant)
		fmt.Fprintf(b, "   Özet: %s\n", c.Summary)
		fmt.Fprintf(b, "   Karar Metni: %s...\n\n", excerpt(c.FullText, secondaryExcerptLen))
	}
}

func (a *SecondaryAssembler) writeConstitution(ctx context.Context, b *strings.Builder, query string) {
	articles, err := a.statutes.SearchConstitution(ctx, query, secondaryStatuteLimit)
	if err != nil {
		a.logger.Warn("Assembler", "Constitution search failed", map[string]interface{}{"error": err.Error()})
		return
	}
	if len(articles) == 0 {
		return
	}

	b.WriteString("İlgili anayasa maddeleri:\n\n")
	for i, m := range articles {
		fmt.Fprintf(b, "%d. Madde %d: %s\n", i+1, m.ArticleNo, m.Title)
		fmt.Fprintf(b, "   İçerik: %s\n", m.Content)
		if m.Rationale != "" {
			fmt.Fprintf(b, "   Gerekçe: %s\n", m.Rationale)
		}
		b.WriteString("\n")
	}
}

func (a *SecondaryAssembler) writePenalCode(ctx context.Context, b *strings.Builder, query string) {
	articles, err := a.statutes.SearchPenalCode(ctx, query, secondaryStatuteLimit)
	if err != nil {
		a.logger.Warn("Assembler", "Penal code search failed", map[string]interface{}{"error": err.Error()})
		return
	}
	if len(articles) == 0 {
		return
	}

	b.WriteString("İlgili ceza kanunu maddeleri:\n\n")
	for i, m := range articles {
		fmt.Fprintf(b, "%d. Madde %d: %s\n", i+1, m.ArticleNo, m.Title)
		fmt.Fprintf(b, "   İçerik: %s\n\n", m.Content)
	}
}
