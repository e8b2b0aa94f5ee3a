package extraction

import (
	"strings"

	"github.com/johnquangdev/task-assigner/internal/domain/entities"
)

// linkDependencies flags tasks whose context sentence contains dependency
// language as depending on the immediately preceding task. The first
// keyword hit stops the scan for that task; the first task in a
// transcript never receives a dependency.
func (e *Engine) linkDependencies(tasks []*entities.Task) {
	for i, task := range tasks {
		lower := strings.ToLower(task.Context)
		for _, kw := range e.rules.depKeywords {
			if strings.Contains(lower, kw) {
				if i > 0 {
					task.Dependencies = []int{tasks[i-1].ID}
				}
				break
			}
		}
	}
}
