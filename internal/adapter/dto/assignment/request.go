package assignment

import "github.com/johnquangdev/task-assigner/internal/domain/entities"

// ProcessTranscriptRequest is the payload for transcript-based extraction.
// An empty transcript is allowed and yields an empty result; roster
// entries, when present, must carry all three fields.
type ProcessTranscriptRequest struct {
	Transcript  string                `json:"transcript"`
	TeamMembers []entities.TeamMember `json:"team_members" validate:"dive"`
}

// ProcessRecordingRequest is the payload for audio-based extraction.
type ProcessRecordingRequest struct {
	AudioURL    string                `json:"audio_url" validate:"required,url"`
	TeamMembers []entities.TeamMember `json:"team_members" validate:"dive"`
}
