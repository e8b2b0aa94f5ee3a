package extraction

import (
	"strings"

	"github.com/johnquangdev/task-assigner/internal/domain/entities"
)

// classifyPriority scans the tier table in declaration order (critical,
// high, low, medium) and the first keyword found anywhere in the sentence
// decides the tier. Medium when nothing matches.
func (e *Engine) classifyPriority(sentence string) string {
	lower := strings.ToLower(sentence)
	for _, tier := range e.rules.priorityTiers {
		for _, kw := range tier.Keywords {
			if strings.Contains(lower, kw) {
				return tier.Name
			}
		}
	}
	return entities.PriorityMedium
}
