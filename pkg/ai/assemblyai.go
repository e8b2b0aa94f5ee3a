package ai

import (
	"context"
	"fmt"
	"os"

	aai "github.com/AssemblyAI/assemblyai-go-sdk"

	"github.com/johnquangdev/task-assigner/pkg/config"
)

// AssemblyAIClient is a thin wrapper around the official AssemblyAI SDK.
// The core engine never talks to it; it only supplies the transcript
// string that extraction consumes.
type AssemblyAIClient struct {
	client *aai.Client
	apiKey string
}

// NewAssemblyAIClient creates an AssemblyAI client using the provided config.
// If cfg is nil, falls back to environment variables.
func NewAssemblyAIClient(cfg *config.AssemblyAIConfig) *AssemblyAIClient {
	var apiKey string
	if cfg != nil {
		apiKey = cfg.APIKey
	}
	if apiKey == "" {
		apiKey = os.Getenv("ASSEMBLYAI_API_KEY")
	}
	return &AssemblyAIClient{
		client: aai.NewClient(apiKey),
		apiKey: apiKey,
	}
}

// Configured reports whether an API key is available.
func (c *AssemblyAIClient) Configured() bool {
	return c.apiKey != ""
}

// Transcribe submits an external audio URL for transcription and waits
// for the finished transcript text.
func (c *AssemblyAIClient) Transcribe(ctx context.Context, audioURL string) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("assemblyai api key not configured")
	}

	params := &aai.TranscriptOptionalParams{
		SpeakerLabels:     aai.Bool(true),
		LanguageDetection: aai.Bool(true),
	}

	transcript, err := c.client.Transcripts.TranscribeFromURL(ctx, audioURL, params)
	if err != nil {
		return "", fmt.Errorf("assemblyai transcription failed: %w", err)
	}

	if transcript.Status == "error" {
		msg := "unknown error"
		if transcript.Error != nil {
			msg = *transcript.Error
		}
		return "", fmt.Errorf("assemblyai transcription failed: %s", msg)
	}
	if transcript.Text == nil || *transcript.Text == "" {
		return "", fmt.Errorf("assemblyai returned an empty transcript")
	}

	return *transcript.Text, nil
}
