package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	EnvAssistantBaseURL         = "REGULA_ASSISTANT_BASE_URL"
	EnvAssistantAPIKey          = "REGULA_ASSISTANT_API_KEY"
	EnvAssistantModel           = "REGULA_ASSISTANT_MODEL"
	EnvAssistantMaxContextChars = "REGULA_ASSISTANT_MAX_CONTEXT_CHARS"
	EnvAssistantTimeout         = "REGULA_ASSISTANT_TIMEOUT"
)

// AssistantConfig holds the completion endpoint parameters for the
// chat and improve features. The endpoint is any OpenAI-compatible
// single-turn completion service.
type AssistantConfig struct {
	BaseURL         string `toml:"base_url"`
	APIKey          string `toml:"api_key"`
	Model           string `toml:"model"`
	MaxContextChars int    `toml:"max_context_chars"`
	Timeout         string `toml:"timeout"`
}

// TimeoutDuration returns Timeout as a time.Duration.
func (c *AssistantConfig) TimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.Timeout)
	return d
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *AssistantConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *AssistantConfig) Merge(overlay *AssistantConfig) {
	if overlay.BaseURL != "" {
		c.BaseURL = overlay.BaseURL
	}
	if overlay.APIKey != "" {
		c.APIKey = overlay.APIKey
	}
	if overlay.Model != "" {
		c.Model = overlay.Model
	}
	if overlay.MaxContextChars != 0 {
		c.MaxContextChars = overlay.MaxContextChars
	}
	if overlay.Timeout != "" {
		c.Timeout = overlay.Timeout
	}
}

func (c *AssistantConfig) loadDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = "https://api.groq.com/openai/v1"
	}
	if c.Model == "" {
		c.Model = "llama-3.1-8b-instant"
	}
	if c.MaxContextChars == 0 {
		c.MaxContextChars = 6000
	}
	if c.Timeout == "" {
		c.Timeout = "30s"
	}
}

func (c *AssistantConfig) loadEnv() {
	if v := os.Getenv(EnvAssistantBaseURL); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv(EnvAssistantAPIKey); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv(EnvAssistantModel); v != "" {
		c.Model = v
	}
	if v := os.Getenv(EnvAssistantMaxContextChars); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxContextChars = n
		}
	}
	if v := os.Getenv(EnvAssistantTimeout); v != "" {
		c.Timeout = v
	}
}

func (c *AssistantConfig) validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("api_key required (set %s)", EnvAssistantAPIKey)
	}
	if c.MaxContextChars < 1 {
		return fmt.Errorf("max_context_chars must be positive")
	}
	if _, err := time.ParseDuration(c.Timeout); err != nil {
		return fmt.Errorf("invalid timeout: %w", err)
	}
	return nil
}
