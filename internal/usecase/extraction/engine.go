package extraction

import (
	"fmt"
	"strings"

	"github.com/johnquangdev/task-assigner/internal/domain/entities"
)

// unassignedReason is attached to every task that no roster member could
// be matched to.
const unassignedReason = "No team member with matching skills found"

// Engine turns a meeting transcript and a roster into a structured task
// assignment result. It holds only the immutable rule tables, so one
// Engine can serve concurrent extraction runs.
type Engine struct {
	rules *Rules
}

// NewEngine creates an Engine. A nil rules falls back to DefaultRules.
func NewEngine(rules *Rules) *Engine {
	if rules == nil {
		rules = DefaultRules()
	}
	return &Engine{rules: rules}
}

// Extract runs the full single-pass pipeline: segmentation, task
// detection, assignment, deadline resolution, priority classification,
// dependency linking and result assembly. It is a pure function of its
// inputs; running it twice on the same transcript and roster produces an
// identical Result.
func (e *Engine) Extract(transcript string, roster []entities.TeamMember) (*entities.Result, error) {
	if err := validateRoster(roster); err != nil {
		return nil, err
	}

	sentences := e.splitSentences(transcript)
	candidates := e.detectTasks(sentences)

	tasks := make([]*entities.Task, 0, len(candidates))
	for _, c := range candidates {
		description := e.extractDescription(c.sentence)

		task := entities.NewTask(len(tasks)+1, makeTitle(description), description, c.sentence)
		task.Priority = e.classifyPriority(c.sentence)

		if deadline := e.resolveDeadline(sentences, c.sentenceIndex); deadline != "" {
			task.Deadline = &deadline
		}

		if assignee, reasoning, ok := e.assign(c.sentence, description, roster); ok {
			name := assignee
			task.AssignedTo = &name
			task.Reasoning = reasoning
		} else {
			task.Reasoning = unassignedReason
		}

		tasks = append(tasks, task)
	}

	e.linkDependencies(tasks)

	return e.assemble(tasks, len(candidates), len(sentences)), nil
}

// assemble partitions tasks into assigned and unassigned sets and
// attaches the one-line meeting summary. IDs keep their detection-order
// values through the partition.
func (e *Engine) assemble(tasks []*entities.Task, candidateCount, sentenceCount int) *entities.Result {
	result := &entities.Result{
		MeetingSummary: fmt.Sprintf(
			"Identified %d potential tasks from %d sentences in the meeting transcript.",
			candidateCount, sentenceCount,
		),
		Tasks:           make([]*entities.Task, 0, len(tasks)),
		UnassignedTasks: make([]entities.UnassignedTask, 0),
	}

	for _, task := range tasks {
		if task.AssignedTo != nil {
			result.Tasks = append(result.Tasks, task)
			continue
		}
		result.UnassignedTasks = append(result.UnassignedTasks, entities.UnassignedTask{
			Description: task.Description,
			Reason:      unassignedReason,
		})
	}

	return result
}

// validateRoster rejects roster entries with a missing name, role or
// skills field. A malformed roster is a precondition violation and fails
// fast; an empty roster is fine and simply leaves every task unassigned.
func validateRoster(roster []entities.TeamMember) error {
	for i, m := range roster {
		if strings.TrimSpace(m.Name) == "" || strings.TrimSpace(m.Role) == "" || strings.TrimSpace(m.Skills) == "" {
			return fmt.Errorf("invalid roster entry at index %d: name, role and skills are required", i)
		}
	}
	return nil
}
