package extraction

import "regexp"

// deadlineKind tells how a matched deadline pattern produces its label.
type deadlineKind int

const (
	deadlineLabel  deadlineKind = iota // fixed label
	deadlineFormat                     // label built from capture groups
	deadlineSkip                       // matches but yields nothing; ends this attempt
)

// DeadlinePattern is one row of the ordered deadline table. Rows are
// evaluated top to bottom and the first match wins, so more specific
// phrasings must come before the generic ones.
type DeadlinePattern struct {
	re     *regexp.Regexp
	kind   deadlineKind
	label  string
	format func(groups []string) string
}

// RoleCategory maps a role-name fragment to keywords that signal work in
// that discipline. The category matches when its name appears as a
// substring of the member's lower-cased role.
type RoleCategory struct {
	Name     string
	Keywords []string
}

// PriorityTier is one row of the priority keyword table.
type PriorityTier struct {
	Name     string
	Keywords []string
}

// Rules holds the fixed keyword and pattern tables the engine matches
// against. A Rules value is built once and never mutated afterwards, so a
// single instance is safe to share across concurrent extraction runs.
type Rules struct {
	sentenceSplit *regexp.Regexp

	// Ordered: the first keyword found in a sentence is the one recorded.
	taskKeywords []string

	// Leading task-indicator phrasing stripped to obtain the description.
	leadingPhrase *regexp.Regexp

	deadlinePatterns []DeadlinePattern
	dayNames         *regexp.Regexp
	dayLabels        map[string]string
	urgencyWords     *regexp.Regexp
	sprintPhrases    []string

	priorityTiers  []PriorityTier
	roleCategories []RoleCategory
	depKeywords    []string
}

// DefaultRules builds the standard rule tables.
func DefaultRules() *Rules {
	return &Rules{
		sentenceSplit: regexp.MustCompile(`[.!?]+`),

		taskKeywords: []string{
			"need to", "should", "must", "have to", "can you", "could you",
			"please", "fix", "implement", "test", "deploy", "document",
			"write", "update", "create", "review", "design",
		},

		leadingPhrase: regexp.MustCompile(`(?i)(?:need to|should|must|have to|can you|could you|please)\s+(.+)`),

		deadlinePatterns: []DeadlinePattern{
			{re: regexp.MustCompile(`(?i)by tomorrow`), kind: deadlineLabel, label: "Tomorrow"},
			{re: regexp.MustCompile(`(?i)until tomorrow`), kind: deadlineLabel, label: "Tomorrow"},
			{re: regexp.MustCompile(`(?i)tomorrow`), kind: deadlineLabel, label: "Tomorrow"},
			{re: regexp.MustCompile(`(?i)by (?:the )?end of (?:this |the )?week`), kind: deadlineLabel, label: "End of week"},
			{re: regexp.MustCompile(`(?i)end of (?:this |the )?week`), kind: deadlineLabel, label: "End of week"},
			{re: regexp.MustCompile(`(?i)by (?:the )?end of (?:this |the )?day`), kind: deadlineLabel, label: "End of day"},
			{re: regexp.MustCompile(`(?i)before friday`), kind: deadlineLabel, label: "Friday"},
			{re: regexp.MustCompile(`(?i)by friday`), kind: deadlineLabel, label: "Friday"},
			{re: regexp.MustCompile(`(?i)next monday`), kind: deadlineLabel, label: "Next Monday"},
			{re: regexp.MustCompile(`(?i)next week`), kind: deadlineLabel, label: "Next week"},
			{
				re:   regexp.MustCompile(`(?i)in (\d+) days?`),
				kind: deadlineFormat,
				format: func(groups []string) string {
					return "In " + groups[1] + " days"
				},
			},
			// Past references are temporal but carry no deadline. A match
			// still ends this attempt so a bare day name inside the same
			// phrase ("last Friday") cannot leak through the fallbacks.
			{re: regexp.MustCompile(`(?i)yesterday`), kind: deadlineSkip},
			{re: regexp.MustCompile(`(?i)last week`), kind: deadlineSkip},
		},

		dayNames: regexp.MustCompile(`(?i)\b(monday|tuesday|wednesday|thursday|friday|saturday|sunday|mon|tue|wed|thu|fri|sat|sun)\b`),
		dayLabels: map[string]string{
			"monday": "Monday", "mon": "Monday",
			"tuesday": "Tuesday", "tue": "Tuesday",
			"wednesday": "Wednesday", "wed": "Wednesday",
			"thursday": "Thursday", "thu": "Thursday",
			"friday": "Friday", "fri": "Friday",
			"saturday": "Saturday", "sat": "Saturday",
			"sunday": "Sunday", "sun": "Sunday",
		},

		urgencyWords: regexp.MustCompile(`(?i)\b(asap|urgent|immediately|now)\b`),

		sprintPhrases: []string{"next sprint", "this sprint", "upcoming sprint", "next iteration"},

		priorityTiers: []PriorityTier{
			{Name: "Critical", Keywords: []string{"critical", "urgent", "asap", "emergency", "blocking", "blocker"}},
			{Name: "High", Keywords: []string{"high priority", "important", "soon", "quickly", "high"}},
			{Name: "Low", Keywords: []string{"low priority", "whenever", "eventually", "nice to have", "low"}},
			{Name: "Medium", Keywords: []string{"medium", "normal", "regular"}},
		},

		roleCategories: []RoleCategory{
			{Name: "frontend", Keywords: []string{"ui", "frontend", "react", "javascript", "css", "screen", "page", "button", "login", "bug"}},
			{Name: "backend", Keywords: []string{"api", "database", "server", "backend", "performance", "optimization", "query", "endpoint"}},
			{Name: "designer", Keywords: []string{"design", "figma", "mockup", "wireframe", "onboarding", "user flow", "prototype"}},
			{Name: "qa", Keywords: []string{"test", "testing", "quality", "automation", "regression", "bug"}},
			{Name: "devops", Keywords: []string{"deploy", "deployment", "pipeline", "infrastructure", "docker", "kubernetes", "monitoring"}},
		},

		depKeywords: []string{"depends on", "after", "once", "when", "first"},
	}
}
