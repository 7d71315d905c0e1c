package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitTextShortInputIsSingleChunk(t *testing.T) {
	chunks := SplitText("kısa metin", 1500, 200)
	assert.Equal(t, []string{"kısa metin"}, chunks)
}

func TestSplitTextOverlapsChunks(t *testing.T) {
	text := strings.Repeat("a", 250)
	chunks := SplitText(text, 100, 20)

	assert.Len(t, chunks, 3)
	assert.Len(t, chunks[0], 100)
	assert.Len(t, chunks[1], 100)
	// last chunk starts at 160, runs to the end
	assert.Len(t, chunks[2], 90)
}

func TestSplitTextCountsRunesNotBytes(t *testing.T) {
	text := strings.Repeat("ğ", 120)
	chunks := SplitText(text, 100, 0)

	assert.Len(t, chunks, 2)
	assert.Equal(t, 100, len([]rune(chunks[0])))
	assert.Equal(t, 20, len([]rune(chunks[1])))
}

func TestSplitTextDegenerateOverlap(t *testing.T) {
	text := strings.Repeat("a", 250)
	chunks := SplitText(text, 100, 100)

	// overlap >= chunkSize falls back to disjoint chunks
	assert.Len(t, chunks, 3)
}
