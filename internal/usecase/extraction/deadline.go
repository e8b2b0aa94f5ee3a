package extraction

import "strings"

// resolveDeadline pattern-matches temporal phrases in the task's own
// sentence, then falls back to the immediately preceding and following
// sentences. The first non-empty result wins; "" means no deadline.
func (e *Engine) resolveDeadline(sentences []string, idx int) string {
	if d := e.matchDeadline(sentences[idx]); d != "" {
		return d
	}
	if idx-1 >= 0 {
		if d := e.matchDeadline(sentences[idx-1]); d != "" {
			return d
		}
	}
	if idx+1 < len(sentences) {
		if d := e.matchDeadline(sentences[idx+1]); d != "" {
			return d
		}
	}
	return ""
}

// matchDeadline runs one resolution attempt against a single sentence:
// the ordered pattern table first, then the day-name, urgency and sprint
// fallbacks. A skip-pattern match ends the attempt without a result,
// which keeps the fallbacks from firing on the same phrase.
func (e *Engine) matchDeadline(sentence string) string {
	for _, p := range e.rules.deadlinePatterns {
		m := p.re.FindStringSubmatch(sentence)
		if m == nil {
			continue
		}
		switch p.kind {
		case deadlineLabel:
			return p.label
		case deadlineFormat:
			return p.format(m)
		case deadlineSkip:
			return ""
		}
	}

	if m := e.rules.dayNames.FindStringSubmatch(sentence); m != nil {
		return e.rules.dayLabels[strings.ToLower(m[1])]
	}

	if e.rules.urgencyWords.MatchString(sentence) {
		return "ASAP"
	}

	lower := strings.ToLower(sentence)
	for _, phrase := range e.rules.sprintPhrases {
		if strings.Contains(lower, phrase) {
			return "Next sprint"
		}
	}

	return ""
}
