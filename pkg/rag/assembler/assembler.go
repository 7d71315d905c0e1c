// Package assembler turns retrieved fragments into the Turkish context block
// the completion prompt embeds.
package assembler

import (
	"fmt"
	"strings"

	"legal-assistant-be/pkg/retrieval"
)

const (
	contextHeader = "İlgili mahkeme kararları:\n\n"

	// Excerpts keep the prompt inside model context limits.
	primaryExcerptLen = 600

	// Anything at or below this is just the header plus noise; the caller
	// should fall back to the secondary path.
	minUsefulLen = 50
)

// Assembler renders fragments into numbered citation blocks.
type Assembler struct{}

func NewAssembler() *Assembler {
	return &Assembler{}
}

// Assemble builds the context block. With no fragments the bare header is
// returned, which IsUseful will reject.
func (a *Assembler) Assemble(fragments []*retrieval.Fragment) string {
	var b strings.Builder
	b.WriteString(contextHeader)

	for i, f := range fragments {
		fmt.Fprintf(&b, "%d. Başlık: %s\n", i+1, f.Title)
		fmt.Fprintf(&b, "   Mahkeme: %s\n", f.Court)
		fmt.Fprintf(&b, "   Başvuru No: %s\n", f.FilingNo)
		fmt.Fprintf(&b, "   Tarih: %s\n", f.DecisionDate)
		fmt.Fprintf(&b, "   Başvurucu: %s\n", f.Applicant)
		fmt.Fprintf(&b, "   Bölüm: %s\n", f.Section)
		fmt.Fprintf(&b, "   İlgili Metin: %s...\n\n", excerpt(f.Text, primaryExcerptLen))
	}

	return b.String()
}

// IsUseful reports whether an assembled context carries enough material to
// ground an answer.
func (a *Assembler) IsUseful(context string) bool {
	return len(context) > minUsefulLen
}

func excerpt(text string, maxRunes int) string {
	runes := []rune(text)
	if len(runes) <= maxRunes {
		return text
	}
	return string(runes[:maxRunes])
}
