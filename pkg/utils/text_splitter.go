package utils

// SplitText splits a long string into chunks of approximately 'chunkSize'
// runes, with 'overlap' runes repeated across boundaries to preserve context.
// Character-based splitting is deliberate: decision texts mix long headers
// and run-on paragraphs, and a tokenizer-aware splitter buys little here.
func SplitText(text string, chunkSize int, overlap int) []string {
	runes := []rune(text)
	totalLen := len(runes)
	if totalLen <= chunkSize {
		return []string{text}
	}

	step := chunkSize - overlap
	if step <= 0 {
		step = chunkSize
	}

	var chunks []string
	for i := 0; i < totalLen; i += step {
		end := i + chunkSize
		if end > totalLen {
			end = totalLen
		}

		chunks = append(chunks, string(runes[i:end]))

		if end == totalLen {
			break
		}
	}

	return chunks
}
