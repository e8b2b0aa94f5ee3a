package extraction

import "testing"

func TestDetectTasks(t *testing.T) {
	e := NewEngine(nil)

	sentences := []string{
		"Good morning everyone",
		"We need to update the release notes",
		"You should fix the login page",
		"The weather is nice",
	}

	candidates := e.detectTasks(sentences)
	if len(candidates) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(candidates))
	}
	if candidates[0].sentenceIndex != 1 || candidates[0].keyword != "need to" {
		t.Errorf("unexpected first candidate: %+v", candidates[0])
	}
	if candidates[1].sentenceIndex != 2 || candidates[1].keyword != "should" {
		t.Errorf("unexpected second candidate: %+v", candidates[1])
	}
}

func TestDetectTasksFirstKeywordWins(t *testing.T) {
	e := NewEngine(nil)

	// "should" precedes "fix" in the keyword list, so it is the one recorded
	// even though both appear in the sentence.
	candidates := e.detectTasks([]string{"You should fix this today"})
	if len(candidates) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(candidates))
	}
	if candidates[0].keyword != "should" {
		t.Errorf("expected keyword %q, got %q", "should", candidates[0].keyword)
	}
}

func TestExtractDescription(t *testing.T) {
	e := NewEngine(nil)

	tests := []struct {
		sentence string
		want     string
	}{
		{"Can you review the deployment scripts", "review the deployment scripts"},
		{"I think we should update the docs", "update the docs"},
		{"Please write release notes for the sprint", "write release notes for the sprint"},
		{"The dashboard is broken again", "The dashboard is broken again"},
	}

	for _, tt := range tests {
		if got := e.extractDescription(tt.sentence); got != tt.want {
			t.Errorf("extractDescription(%q) = %q, want %q", tt.sentence, got, tt.want)
		}
	}
}

func TestMakeTitle(t *testing.T) {
	short := "fix the login bug"
	if got := makeTitle(short); got != short {
		t.Errorf("short description should be untouched, got %q", got)
	}

	long := "update the API documentation before the release and notify the whole team"
	got := makeTitle(long)
	want := string([]rune(long)[:50]) + "..."
	if got != want {
		t.Errorf("makeTitle() = %q, want %q", got, want)
	}
}
