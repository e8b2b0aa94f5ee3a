package extraction

import "strings"

// splitSentences breaks a transcript into trimmed, non-empty sentences.
// The index of a sentence in the returned slice is its identity for
// neighbor lookups during deadline resolution.
func (e *Engine) splitSentences(transcript string) []string {
	parts := e.rules.sentenceSplit.Split(transcript, -1)
	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		s := strings.TrimSpace(p)
		if s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}
