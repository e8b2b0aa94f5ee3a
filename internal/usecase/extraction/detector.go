package extraction

import "strings"

// candidateTask is a sentence flagged as task-bearing, before it becomes
// a structured Task.
type candidateTask struct {
	sentenceIndex int
	keyword       string
	sentence      string
}

// detectTasks flags sentences that contain actionable language. Only the
// first matching keyword per sentence is recorded; the keyword list order
// is the tie-break.
func (e *Engine) detectTasks(sentences []string) []candidateTask {
	candidates := make([]candidateTask, 0)
	for i, sentence := range sentences {
		lower := strings.ToLower(sentence)
		for _, kw := range e.rules.taskKeywords {
			if strings.Contains(lower, kw) {
				candidates = append(candidates, candidateTask{
					sentenceIndex: i,
					keyword:       kw,
					sentence:      sentence,
				})
				break
			}
		}
	}
	return candidates
}

// extractDescription strips leading task-indicator phrasing ("need to",
// "should", ...) to obtain the action text. This is a best-effort strip,
// not a parse; when no indicator is found the full sentence is returned.
func (e *Engine) extractDescription(sentence string) string {
	if m := e.rules.leadingPhrase.FindStringSubmatch(sentence); m != nil {
		return strings.TrimSpace(m[1])
	}
	return strings.TrimSpace(sentence)
}

// makeTitle truncates a description to 50 runes, appending an ellipsis
// when anything was cut off.
func makeTitle(description string) string {
	const maxLen = 50
	runes := []rune(description)
	if len(runes) <= maxLen {
		return description
	}
	return string(runes[:maxLen]) + "..."
}
