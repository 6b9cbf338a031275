package api

import (
	"time"

	"github.com/regulaai/regula/internal/config"
	"github.com/regulaai/regula/internal/infrastructure"
)

// Runtime extends Infrastructure with API-specific configuration.
type Runtime struct {
	*infrastructure.Infrastructure
	AuthUsername    string
	AuthPassword    string
	MailSender      string
	MaxContextChars int
	AssistantCall   time.Duration
}

// NewRuntime creates an API runtime with a module-scoped logger.
func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) *Runtime {
	return &Runtime{
		Infrastructure: &infrastructure.Infrastructure{
			Lifecycle: infra.Lifecycle,
			Logger:    infra.Logger.With("module", "api"),
			Sessions:  infra.Sessions,
			Model:     infra.Model,
			Mailer:    infra.Mailer,
		},
		AuthUsername:    cfg.Auth.Username,
		AuthPassword:    cfg.Auth.Password,
		MailSender:      cfg.Mail.Sender,
		MaxContextChars: cfg.Assistant.MaxContextChars,
		AssistantCall:   cfg.Assistant.TimeoutDuration(),
	}
}
