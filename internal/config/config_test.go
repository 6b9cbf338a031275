package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/regulaai/regula/internal/config"
)

// setRequired provides the credentials that Load refuses to run without.
func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv(config.EnvAuthUsername, "admin")
	t.Setenv(config.EnvAuthPassword, "secret")
	t.Setenv(config.EnvAssistantAPIKey, "test-key")
	t.Setenv(config.EnvMailSender, "reports@example.com")
	t.Setenv(config.EnvMailPassword, "mail-secret")
	t.Setenv(config.EnvRegulaEnv, "")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)
	t.Chdir(t.TempDir())

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("server port: got %d, want 8080", cfg.Server.Port)
	}
	if cfg.Auth.SessionTTLDuration() != 12*time.Hour {
		t.Errorf("session ttl: got %s, want 12h", cfg.Auth.SessionTTL)
	}
	if cfg.Assistant.BaseURL != "https://api.groq.com/openai/v1" {
		t.Errorf("assistant base url: got %s", cfg.Assistant.BaseURL)
	}
	if cfg.Assistant.Model != "llama-3.1-8b-instant" {
		t.Errorf("assistant model: got %s", cfg.Assistant.Model)
	}
	if cfg.Assistant.MaxContextChars != 6000 {
		t.Errorf("max context chars: got %d, want 6000", cfg.Assistant.MaxContextChars)
	}
	if cfg.Mail.Host != "smtp.gmail.com" || cfg.Mail.Port != 465 {
		t.Errorf("mail relay: got %s:%d", cfg.Mail.Host, cfg.Mail.Port)
	}
	if cfg.API.BasePath != "/api" {
		t.Errorf("api base path: got %s", cfg.API.BasePath)
	}
	if cfg.API.MaxUploadSizeBytes() != 20*1024*1024 {
		t.Errorf("max upload: got %d", cfg.API.MaxUploadSizeBytes())
	}
}

func TestLoadMissingCredentials(t *testing.T) {
	tests := []struct {
		name  string
		unset string
	}{
		{"auth username", config.EnvAuthUsername},
		{"auth password", config.EnvAuthPassword},
		{"assistant api key", config.EnvAssistantAPIKey},
		{"mail sender", config.EnvMailSender},
		{"mail password", config.EnvMailPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequired(t)
			t.Setenv(tt.unset, "")
			t.Chdir(t.TempDir())

			if _, err := config.Load(); err == nil {
				t.Error("load should fail without required credentials")
			}
		})
	}
}

func TestLoadFromTOML(t *testing.T) {
	setRequired(t)
	dir := t.TempDir()
	t.Chdir(dir)

	toml := `
version = "1.2.3"

[server]
port = 9090

[auth]
session_ttl = "1h"

[assistant]
model = "custom-model"

[api]
base_path = "/v1"
max_upload_size = "5MB"
`
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(toml), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Version != "1.2.3" {
		t.Errorf("version: got %s", cfg.Version)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("port: got %d, want 9090", cfg.Server.Port)
	}
	if cfg.Auth.SessionTTL != "1h" {
		t.Errorf("session ttl: got %s", cfg.Auth.SessionTTL)
	}
	if cfg.Assistant.Model != "custom-model" {
		t.Errorf("model: got %s", cfg.Assistant.Model)
	}
	if cfg.API.BasePath != "/v1" {
		t.Errorf("base path: got %s", cfg.API.BasePath)
	}
	if cfg.API.MaxUploadSizeBytes() != 5*1024*1024 {
		t.Errorf("max upload: got %d", cfg.API.MaxUploadSizeBytes())
	}
}

func TestEnvOverridesTOML(t *testing.T) {
	setRequired(t)
	dir := t.TempDir()
	t.Chdir(dir)

	toml := `
[server]
port = 9090
`
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(toml), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(config.EnvServerPort, "7070")
	t.Setenv(config.EnvAssistantModel, "env-model")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Server.Port != 7070 {
		t.Errorf("port: got %d, want 7070 (env should win)", cfg.Server.Port)
	}
	if cfg.Assistant.Model != "env-model" {
		t.Errorf("model: got %s, want env-model", cfg.Assistant.Model)
	}
}

func TestOverlayMerge(t *testing.T) {
	setRequired(t)
	dir := t.TempDir()
	t.Chdir(dir)

	base := `
[server]
port = 9090
host = "127.0.0.1"
`
	overlay := `
[server]
port = 9999
`
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(base), 0o644); err != nil {
		t.Fatalf("write base: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.staging.toml"), []byte(overlay), 0o644); err != nil {
		t.Fatalf("write overlay: %v", err)
	}
	t.Setenv(config.EnvRegulaEnv, "staging")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Server.Port != 9999 {
		t.Errorf("port: got %d, want 9999 (overlay should win)", cfg.Server.Port)
	}
	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("host: got %s, want base value preserved", cfg.Server.Host)
	}
}

func TestInvalidSessionTTL(t *testing.T) {
	setRequired(t)
	t.Setenv(config.EnvAuthSessionTTL, "not-a-duration")
	t.Chdir(t.TempDir())

	if _, err := config.Load(); err == nil {
		t.Error("load should fail on invalid session_ttl")
	}
}
