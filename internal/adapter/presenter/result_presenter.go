package presenter

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/johnquangdev/task-assigner/internal/domain/entities"
)

// ResultPresenter renders a Result for download and display. It never
// modifies the result document itself.
type ResultPresenter struct{}

// NewResultPresenter creates a new ResultPresenter instance
func NewResultPresenter() *ResultPresenter {
	return &ResultPresenter{}
}

// RenderCSV renders the assigned tasks as a CSV document matching the
// downloadable export of the web UI.
func (p *ResultPresenter) RenderCSV(result *entities.Result) (string, error) {
	var b strings.Builder
	w := csv.NewWriter(&b)

	if err := w.Write([]string{"Task ID", "Title", "Description", "Assigned To", "Deadline", "Priority", "Reasoning"}); err != nil {
		return "", fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, t := range result.Tasks {
		record := []string{
			strconv.Itoa(t.ID),
			t.Title,
			t.Description,
			stringOrEmpty(t.AssignedTo),
			stringOrEmpty(t.Deadline),
			t.Priority,
			t.Reasoning,
		}
		if err := w.Write(record); err != nil {
			return "", fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to flush CSV: %w", err)
	}
	return b.String(), nil
}

// FormatTable renders the result as a fixed-width text table.
func (p *ResultPresenter) FormatTable(result *entities.Result) string {
	var b strings.Builder
	heavy := strings.Repeat("=", 100)
	light := strings.Repeat("-", 100)

	b.WriteString("\n" + heavy + "\n")
	b.WriteString("MEETING TASK ASSIGNMENTS\n")
	b.WriteString(heavy + "\n\n")

	if result.MeetingSummary != "" {
		fmt.Fprintf(&b, "Summary: %s\n\n", result.MeetingSummary)
	}

	fmt.Fprintf(&b, "%-4s %-30s %-15s %-15s %-10s %-15s\n", "#", "Task", "Assigned To", "Deadline", "Priority", "Dependencies")
	b.WriteString(light + "\n")

	for _, t := range result.Tasks {
		assigned := "Unassigned"
		if t.AssignedTo != nil {
			assigned = *t.AssignedTo
		}
		deadline := "Not set"
		if t.Deadline != nil {
			deadline = *t.Deadline
		}
		deps := "-"
		if len(t.Dependencies) > 0 {
			parts := make([]string, len(t.Dependencies))
			for i, d := range t.Dependencies {
				parts[i] = strconv.Itoa(d)
			}
			deps = strings.Join(parts, ", ")
		}

		fmt.Fprintf(&b, "%-4d %-30s %-15s %-15s %-10s %-15s\n",
			t.ID, clip(t.Title, 28), clip(assigned, 13), clip(deadline, 13), clip(t.Priority, 8), deps)

		if t.Description != "" {
			fmt.Fprintf(&b, "     Description: %s\n", t.Description)
		}
		if t.Reasoning != "" {
			fmt.Fprintf(&b, "     Reasoning: %s\n", t.Reasoning)
		}
		if t.Context != "" {
			fmt.Fprintf(&b, "     Context: %s\n", t.Context)
		}
		b.WriteString("\n")
	}

	if len(result.UnassignedTasks) > 0 {
		b.WriteString("\nUNASSIGNED TASKS:\n")
		b.WriteString(light + "\n")
		for _, u := range result.UnassignedTasks {
			fmt.Fprintf(&b, "- %s\n", u.Description)
			fmt.Fprintf(&b, "  Reason: %s\n\n", u.Reason)
		}
	}

	b.WriteString(heavy + "\n")
	return b.String()
}

// clip truncates a value to the given rune count for column alignment.
func clip(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
