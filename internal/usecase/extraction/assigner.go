package extraction

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/johnquangdev/task-assigner/internal/domain/entities"
)

// Skill and role scoring weights.
const (
	skillWeight    = 2.0
	roleWeight     = 1.0
	categoryWeight = 1.5
)

// assign resolves the owner of a task. An explicit whole-word mention of a
// roster member's name in the sentence wins outright; otherwise members
// are scored against the task description and the first strictly highest
// scorer in roster order wins. Returns ok=false when nobody qualifies.
func (e *Engine) assign(sentence, description string, roster []entities.TeamMember) (assignee, reasoning string, ok bool) {
	for _, m := range roster {
		if mentionsName(sentence, m.Name) {
			return m.Name, "Explicitly mentioned in discussion", true
		}
	}
	return e.assignByScore(description, roster)
}

// assignByScore picks the roster member with the strictly highest skill
// and role score. A member scoring zero is never considered, so a task
// with no signal at all stays unassigned.
func (e *Engine) assignByScore(description string, roster []entities.TeamMember) (assignee, reasoning string, ok bool) {
	descLower := strings.ToLower(description)

	var (
		bestScore  float64
		bestName   string
		bestSkills []string
		bestRole   string
	)

	for _, m := range roster {
		score, matched := e.scoreMember(descLower, m)
		if score > bestScore {
			bestScore = score
			bestName = m.Name
			bestSkills = matched
			bestRole = m.Role
		}
	}

	if bestScore == 0 {
		return "", "", false
	}

	if len(bestSkills) > 0 {
		reasoning = fmt.Sprintf("Matched skills: %s", strings.Join(bestSkills, ", "))
	} else {
		reasoning = fmt.Sprintf("Role match: %s", bestRole)
	}
	return bestName, reasoning, true
}

// scoreMember computes a member's relevance score for a lower-cased task
// description: +2 per skill token hit, +1 per role word hit, +1.5 per
// role-category keyword hit. Matched skill tokens are returned for the
// reasoning text.
func (e *Engine) scoreMember(descLower string, m entities.TeamMember) (float64, []string) {
	var score float64
	var matchedSkills []string

	for _, skill := range m.SkillTokens() {
		if strings.Contains(descLower, skill) {
			score += skillWeight
			matchedSkills = append(matchedSkills, skill)
		}
	}

	for _, word := range m.RoleTokens() {
		if strings.Contains(descLower, word) {
			score += roleWeight
		}
	}

	roleLower := strings.ToLower(m.Role)
	for _, cat := range e.rules.roleCategories {
		if !strings.Contains(roleLower, cat.Name) {
			continue
		}
		for _, kw := range cat.Keywords {
			if strings.Contains(descLower, kw) {
				score += categoryWeight
			}
		}
	}

	return score, matchedSkills
}

// mentionsName reports whether name appears as a whole word in the
// sentence, case-insensitively.
func mentionsName(sentence, name string) bool {
	re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(name) + `\b`)
	return re.MatchString(sentence)
}
