// Package infrastructure provides core service initialization for application startup.
// It assembles common dependencies (logging, completion model, mail client) that
// domain systems require.
package infrastructure

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/wneessen/go-mail"

	"github.com/regulaai/regula/internal/config"
	"github.com/regulaai/regula/internal/sessions"
	"github.com/regulaai/regula/pkg/lifecycle"
)

// Infrastructure holds the core systems required by all domain modules.
// It provides a single point of initialization for lifecycle coordination,
// logging, session state, the completion model, and the mail relay client.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Sessions  *sessions.Store
	Model     model.BaseChatModel
	Mailer    *mail.Client
}

// New creates an Infrastructure from the application configuration.
// The completion model and mail client are constructed eagerly so that
// misconfiguration surfaces at startup rather than on first use.
func New(cfg *config.Config) (*Infrastructure, error) {
	lc := lifecycle.New()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	chatModel, err := openai.NewChatModel(context.Background(), &openai.ChatModelConfig{
		BaseURL: cfg.Assistant.BaseURL,
		APIKey:  cfg.Assistant.APIKey,
		Model:   cfg.Assistant.Model,
		Timeout: cfg.Assistant.TimeoutDuration(),
	})
	if err != nil {
		return nil, fmt.Errorf("completion model init failed: %w", err)
	}

	mailer, err := mail.NewClient(
		cfg.Mail.Host,
		mail.WithPort(cfg.Mail.Port),
		mail.WithSSL(),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.Mail.Sender),
		mail.WithPassword(cfg.Mail.Password),
		mail.WithTimeout(cfg.Mail.TimeoutDuration()),
	)
	if err != nil {
		return nil, fmt.Errorf("mail client init failed: %w", err)
	}

	return &Infrastructure{
		Lifecycle: lc,
		Logger:    logger,
		Sessions:  sessions.NewStore(cfg.Auth.SessionTTLDuration(), logger),
		Model:     chatModel,
		Mailer:    mailer,
	}, nil
}

// Start registers infrastructure systems with the lifecycle coordinator.
// The session store's idle sweep runs until shutdown.
func (i *Infrastructure) Start() error {
	i.Sessions.Start(i.Lifecycle)
	return nil
}
