package entities

// Task priority tiers
const (
	PriorityCritical = "Critical"
	PriorityHigh     = "High"
	PriorityMedium   = "Medium"
	PriorityLow      = "Low"
)

// Task is one actionable item extracted from a meeting transcript.
// IDs are 1-based and assigned in detection order; they stay stable even
// when unassigned tasks are later moved out of the main list.
type Task struct {
	ID           int     `json:"task_id"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	AssignedTo   *string `json:"assigned_to"`
	Deadline     *string `json:"deadline"`
	Priority     string  `json:"priority"`
	Dependencies []int   `json:"dependencies"`
	Reasoning    string  `json:"reasoning"`
	Context      string  `json:"context"`
}

// NewTask creates a Task with the default Medium priority.
func NewTask(id int, title, description, context string) *Task {
	return &Task{
		ID:          id,
		Title:       title,
		Description: description,
		Priority:    PriorityMedium,
		Context:     context,
	}
}

// UnassignedTask is a task that could not be matched to any roster member.
type UnassignedTask struct {
	Description string `json:"description"`
	Reason      string `json:"reason"`
}

// Result is the complete outcome of one extraction run and the sole
// contract with downstream presentation and export collaborators.
type Result struct {
	MeetingSummary  string           `json:"meeting_summary"`
	Tasks           []*Task          `json:"tasks"`
	UnassignedTasks []UnassignedTask `json:"unassigned_tasks"`
}
