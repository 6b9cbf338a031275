package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	EnvMailHost     = "REGULA_MAIL_HOST"
	EnvMailPort     = "REGULA_MAIL_PORT"
	EnvMailSender   = "REGULA_MAIL_SENDER"
	EnvMailPassword = "REGULA_MAIL_PASSWORD"
	EnvMailTimeout  = "REGULA_MAIL_TIMEOUT"
)

// MailConfig holds SMTP submission parameters for report delivery.
// The sender address doubles as the relay username.
type MailConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	Sender   string `toml:"sender"`
	Password string `toml:"password"`
	Timeout  string `toml:"timeout"`
}

// TimeoutDuration returns Timeout as a time.Duration.
func (c *MailConfig) TimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.Timeout)
	return d
}

// Finalize applies defaults, environment variable overrides, and validation.
// Missing sender credentials are a startup failure.
func (c *MailConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *MailConfig) Merge(overlay *MailConfig) {
	if overlay.Host != "" {
		c.Host = overlay.Host
	}
	if overlay.Port != 0 {
		c.Port = overlay.Port
	}
	if overlay.Sender != "" {
		c.Sender = overlay.Sender
	}
	if overlay.Password != "" {
		c.Password = overlay.Password
	}
	if overlay.Timeout != "" {
		c.Timeout = overlay.Timeout
	}
}

func (c *MailConfig) loadDefaults() {
	if c.Host == "" {
		c.Host = "smtp.gmail.com"
	}
	if c.Port == 0 {
		c.Port = 465
	}
	if c.Timeout == "" {
		c.Timeout = "30s"
	}
}

func (c *MailConfig) loadEnv() {
	if v := os.Getenv(EnvMailHost); v != "" {
		c.Host = v
	}
	if v := os.Getenv(EnvMailPort); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Port = port
		}
	}
	if v := os.Getenv(EnvMailSender); v != "" {
		c.Sender = v
	}
	if v := os.Getenv(EnvMailPassword); v != "" {
		c.Password = v
	}
	if v := os.Getenv(EnvMailTimeout); v != "" {
		c.Timeout = v
	}
}

func (c *MailConfig) validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if c.Sender == "" {
		return fmt.Errorf("sender required (set %s)", EnvMailSender)
	}
	if c.Password == "" {
		return fmt.Errorf("password required (set %s)", EnvMailPassword)
	}
	if _, err := time.ParseDuration(c.Timeout); err != nil {
		return fmt.Errorf("invalid timeout: %w", err)
	}
	return nil
}
