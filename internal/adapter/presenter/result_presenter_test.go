package presenter

import (
	"strings"
	"testing"

	"github.com/johnquangdev/task-assigner/internal/domain/entities"
)

func sampleResult() *entities.Result {
	assignee := "Mohit"
	deadline := "Friday"
	return &entities.Result{
		MeetingSummary: "Identified 2 potential tasks from 3 sentences in the meeting transcript.",
		Tasks: []*entities.Task{
			{
				ID:          1,
				Title:       "update the API documentation",
				Description: "update the API documentation before the release",
				AssignedTo:  &assignee,
				Deadline:    &deadline,
				Priority:    entities.PriorityHigh,
				Reasoning:   "Role match: Backend Engineer",
				Context:     "We need to update the API documentation before the release",
			},
			{
				ID:           2,
				Title:        "write unit tests for the payment module",
				Description:  "write unit tests for the payment module",
				Priority:     entities.PriorityMedium,
				Dependencies: []int{1},
				Reasoning:    "No team member with matching skills found",
			},
		},
		UnassignedTasks: []entities.UnassignedTask{
			{Description: "tackle the slow dashboard", Reason: "No team member with matching skills found"},
		},
	}
}

func TestRenderCSV(t *testing.T) {
	p := NewResultPresenter()

	out, err := p.RenderCSV(sampleResult())
	if err != nil {
		t.Fatalf("RenderCSV() error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header and 2 records, got %d lines", len(lines))
	}
	if lines[0] != "Task ID,Title,Description,Assigned To,Deadline,Priority,Reasoning" {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "1,") || !strings.Contains(lines[1], "Mohit") {
		t.Errorf("record 1 = %q", lines[1])
	}

	// Nil assignee and deadline render as empty cells, not "null".
	if !strings.Contains(lines[2], ",,") {
		t.Errorf("record 2 = %q, want empty cells for unset fields", lines[2])
	}
	if strings.Contains(lines[2], "null") {
		t.Errorf("record 2 = %q must not contain null", lines[2])
	}
}

func TestRenderCSVQuotesCommas(t *testing.T) {
	p := NewResultPresenter()

	result := &entities.Result{
		Tasks: []*entities.Task{
			{ID: 1, Title: "fix bugs, then deploy", Description: "fix bugs, then deploy", Priority: entities.PriorityMedium},
		},
	}

	out, err := p.RenderCSV(result)
	if err != nil {
		t.Fatalf("RenderCSV() error: %v", err)
	}
	if !strings.Contains(out, `"fix bugs, then deploy"`) {
		t.Errorf("fields with commas must be quoted: %q", out)
	}
}

func TestFormatTable(t *testing.T) {
	p := NewResultPresenter()

	out := p.FormatTable(sampleResult())

	for _, want := range []string{
		"MEETING TASK ASSIGNMENTS",
		"Summary: Identified 2 potential tasks",
		"Mohit",
		"Friday",
		"Unassigned",
		"Not set",
		"UNASSIGNED TASKS:",
		"- tackle the slow dashboard",
		"Reason: No team member with matching skills found",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("table output is missing %q", want)
		}
	}

	// The second task depends on the first.
	if !strings.Contains(out, "Reasoning: No team member with matching skills found") {
		t.Error("table output is missing the reasoning detail line")
	}
}

func TestFormatTableClipsLongTitles(t *testing.T) {
	p := NewResultPresenter()

	long := strings.Repeat("x", 60)
	result := &entities.Result{
		Tasks: []*entities.Task{{ID: 1, Title: long, Priority: entities.PriorityMedium}},
	}

	out := p.FormatTable(result)
	if strings.Contains(out, long) {
		t.Error("titles longer than the column width must be clipped")
	}
	if !strings.Contains(out, strings.Repeat("x", 28)) {
		t.Error("clipped title should keep its first 28 runes")
	}
}
