package entities

import "strings"

// TeamMember is one roster entry available for task assignment.
// The roster is supplied by the caller (file upload or manual entry) and
// is read-only for the duration of an extraction run.
type TeamMember struct {
	Name   string `json:"name" validate:"required"`
	Role   string `json:"role" validate:"required"`
	Skills string `json:"skills" validate:"required"`
}

// SkillTokens splits the comma-separated skills field into trimmed,
// lower-cased tokens. Empty tokens are dropped.
func (m TeamMember) SkillTokens() []string {
	parts := strings.Split(m.Skills, ",")
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		token := strings.ToLower(strings.TrimSpace(p))
		if token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

// RoleTokens splits the free-text role into lower-cased whitespace tokens.
func (m TeamMember) RoleTokens() []string {
	return strings.Fields(strings.ToLower(m.Role))
}
