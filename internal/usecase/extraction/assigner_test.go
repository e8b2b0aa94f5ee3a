package extraction

import (
	"testing"

	"github.com/johnquangdev/task-assigner/internal/domain/entities"
)

func sampleRoster() []entities.TeamMember {
	return []entities.TeamMember{
		{Name: "Sakshi", Role: "Frontend Developer", Skills: "React, JavaScript, UI bugs"},
		{Name: "Mohit", Role: "Backend Engineer", Skills: "Database, APIs, Performance optimization"},
		{Name: "Arjun", Role: "UI/UX Designer", Skills: "Figma, User flows, Mobile design"},
		{Name: "Lata", Role: "QA Engineer", Skills: "Testing, Automation, Quality assurance"},
	}
}

func TestAssignExplicitMentionWins(t *testing.T) {
	e := NewEngine(nil)

	sentence := "The database performance is really slow, Mohit you're good with backend optimization"
	assignee, reasoning, ok := e.assign(sentence, sentence, sampleRoster())
	if !ok {
		t.Fatal("expected an assignee")
	}
	if assignee != "Mohit" {
		t.Errorf("assignee = %q, want %q", assignee, "Mohit")
	}
	if reasoning != "Explicitly mentioned in discussion" {
		t.Errorf("reasoning = %q", reasoning)
	}
}

func TestAssignExplicitMentionBeatsSkillMatch(t *testing.T) {
	e := NewEngine(nil)

	// The description points squarely at Mohit's database skills, but the
	// sentence names Lata. The mention must win.
	sentence := "Lata, please fix the database performance problem"
	description := "fix the database performance problem"

	assignee, _, ok := e.assign(sentence, description, sampleRoster())
	if !ok || assignee != "Lata" {
		t.Fatalf("assignee = %q (ok=%v), want Lata", assignee, ok)
	}

	// Sanity check that skill scoring alone would have gone the other way.
	byScore, _, ok := e.assignByScore(description, sampleRoster())
	if !ok || byScore != "Mohit" {
		t.Fatalf("score-only assignee = %q (ok=%v), want Mohit", byScore, ok)
	}
}

func TestAssignMentionIsWholeWord(t *testing.T) {
	e := NewEngine(nil)

	roster := []entities.TeamMember{
		{Name: "Ann", Role: "Backend Engineer", Skills: "Database"},
	}
	sentence := "The anniversary release notes look wrong"

	if _, _, ok := e.assign(sentence, sentence, roster); ok {
		t.Error("substring of a longer word must not count as a mention")
	}

	if !mentionsName("ANN should take this", "Ann") {
		t.Error("mention matching must be case-insensitive")
	}
}

func TestAssignByScoreSkillReasoning(t *testing.T) {
	e := NewEngine(nil)

	assignee, reasoning, ok := e.assignByScore("migrate the database and tune apis", sampleRoster())
	if !ok || assignee != "Mohit" {
		t.Fatalf("assignee = %q (ok=%v), want Mohit", assignee, ok)
	}
	if reasoning != "Matched skills: database, apis" {
		t.Errorf("reasoning = %q", reasoning)
	}
}

func TestAssignByScoreRoleCategoryReasoning(t *testing.T) {
	e := NewEngine(nil)

	// No skill token matches, only role-category keywords, so the
	// reasoning falls back to the role.
	assignee, reasoning, ok := e.assignByScore("fix the critical login bug", sampleRoster())
	if !ok || assignee != "Sakshi" {
		t.Fatalf("assignee = %q (ok=%v), want Sakshi", assignee, ok)
	}
	if reasoning != "Role match: Frontend Developer" {
		t.Errorf("reasoning = %q", reasoning)
	}
}

func TestAssignByScoreTieKeepsRosterOrder(t *testing.T) {
	e := NewEngine(nil)

	roster := []entities.TeamMember{
		{Name: "First", Role: "Backend Engineer", Skills: "Database"},
		{Name: "Second", Role: "Backend Engineer", Skills: "Database"},
	}

	for i := 0; i < 10; i++ {
		assignee, _, ok := e.assignByScore("tune the database", roster)
		if !ok || assignee != "First" {
			t.Fatalf("run %d: assignee = %q (ok=%v), want First", i, assignee, ok)
		}
	}
}

func TestAssignByScoreZeroScoreStaysUnassigned(t *testing.T) {
	e := NewEngine(nil)

	if _, _, ok := e.assignByScore("order lunch for the offsite", sampleRoster()); ok {
		t.Error("a description with no signal must stay unassigned")
	}
}
