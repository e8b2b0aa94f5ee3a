package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.Redis.ResultTTL != 24*time.Hour {
		t.Errorf("ResultTTL = %v, want 24h", cfg.Redis.ResultTTL)
	}
	if cfg.Assembly.PollTimeout != 5*time.Minute {
		t.Errorf("PollTimeout = %v, want 5m", cfg.Assembly.PollTimeout)
	}
	if cfg.Storage.BucketName != "task-assignments" {
		t.Errorf("BucketName = %q", cfg.Storage.BucketName)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("REDIS_HOST", "cache.internal")
	t.Setenv("REDIS_PORT", "6380")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Server.Port != "9090" {
		t.Errorf("Port = %q, want 9090", cfg.Server.Port)
	}
	if got := cfg.GetRedisAddr(); got != "cache.internal:6380" {
		t.Errorf("GetRedisAddr() = %q", got)
	}
}

func TestValidateStorageCredentials(t *testing.T) {
	cfg := &Config{}
	cfg.Storage.Endpoint = "minio.internal:9000"

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected an error when storage credentials are missing")
	}

	cfg.Storage.AccessKeyID = "key"
	cfg.Storage.SecretAccessKey = "secret"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
}
