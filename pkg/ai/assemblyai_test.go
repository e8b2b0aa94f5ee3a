package ai

import (
	"context"
	"testing"

	"github.com/johnquangdev/task-assigner/pkg/config"
)

func TestConfigured(t *testing.T) {
	t.Setenv("ASSEMBLYAI_API_KEY", "")

	client := NewAssemblyAIClient(&config.AssemblyAIConfig{APIKey: "test-key"})
	if !client.Configured() {
		t.Error("client with an API key should report configured")
	}

	client = NewAssemblyAIClient(&config.AssemblyAIConfig{})
	if client.Configured() {
		t.Error("client without an API key should report unconfigured")
	}
}

func TestConfiguredFromEnvironment(t *testing.T) {
	t.Setenv("ASSEMBLYAI_API_KEY", "env-key")

	client := NewAssemblyAIClient(nil)
	if !client.Configured() {
		t.Error("client should pick the key up from the environment")
	}
}

func TestTranscribeUnconfigured(t *testing.T) {
	t.Setenv("ASSEMBLYAI_API_KEY", "")

	client := NewAssemblyAIClient(&config.AssemblyAIConfig{})
	if _, err := client.Transcribe(context.Background(), "https://example.com/a.mp3"); err == nil {
		t.Error("Transcribe without an API key must fail")
	}
}
