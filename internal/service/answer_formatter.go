package service

import (
	"encoding/json"
	"regexp"
	"strings"
)

var (
	// Three or more asterisks collapse to plain bold markers.
	manyAsterisks = regexp.MustCompile(`\*{3,}`)

	// Numbered section headings get their own paragraph.
	numberedHeading = regexp.MustCompile(`\*\*(\d+\.\s*[A-ZĞÜŞİÖÇ\s]+:?)\*\*`)

	// So do all-caps subheadings.
	upperHeading = regexp.MustCompile(`\*\*([A-ZĞÜŞİÖÇ\s]{3,}:?)\*\*`)

	blankRuns = regexp.MustCompile(`\n{3,}`)
)

// formatAnswer normalizes a raw completion before redaction and persistence:
// unwraps a {"response": ...} envelope some models emit, cleans up stray
// markdown asterisks, and reflows headings onto their own lines.
func formatAnswer(answer string) string {
	if strings.HasPrefix(strings.TrimSpace(answer), "{") {
		var wrapped struct {
			Response string `json:"response"`
		}
		if err := json.Unmarshal([]byte(answer), &wrapped); err != nil {
			// Not actually JSON; better to pass it through untouched than
			// to half-format it.
			return answer
		}
		if wrapped.Response != "" {
			answer = wrapped.Response
		}
	}

	answer = manyAsterisks.ReplaceAllString(answer, "**")
	answer = stripLoneAsterisks(answer)
	answer = numberedHeading.ReplaceAllString(answer, "\n\n**$1**\n")
	answer = upperHeading.ReplaceAllString(answer, "\n\n**$1**\n")
	answer = blankRuns.ReplaceAllString(answer, "\n\n")

	return strings.TrimSpace(answer)
}

// stripLoneAsterisks removes asterisks that are not part of a ** pair.
func stripLoneAsterisks(s string) string {
	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(s))
	for i, r := range runes {
		if r == '*' {
			prevStar := i > 0 && runes[i-1] == '*'
			nextStar := i+1 < len(runes) && runes[i+1] == '*'
			if !prevStar && !nextStar {
				continue
			}
		}
		b.WriteRune(r)
	}
	return b.String()
}
