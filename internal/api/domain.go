package api

import (
	"github.com/regulaai/regula/internal/analysis"
	"github.com/regulaai/regula/internal/assistant"
	"github.com/regulaai/regula/internal/contracts"
	"github.com/regulaai/regula/internal/sessions"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Auth      *sessions.Handler
	Contracts contracts.System
	Analysis  analysis.System
	Assistant assistant.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	authHandler := sessions.NewHandler(
		runtime.Sessions,
		runtime.AuthUsername,
		runtime.AuthPassword,
		runtime.Logger,
	)

	contractsSystem := contracts.New(runtime.Sessions, runtime.Logger)

	notifier := analysis.NewNotifier(
		runtime.Mailer,
		runtime.MailSender,
		runtime.Logger,
	)
	analysisSystem := analysis.New(runtime.Sessions, notifier, runtime.Logger)

	assistantSystem := assistant.New(
		runtime.Model,
		runtime.Sessions,
		runtime.MaxContextChars,
		runtime.AssistantCall,
		runtime.Logger,
	)

	return &Domain{
		Auth:      authHandler,
		Contracts: contractsSystem,
		Analysis:  analysisSystem,
		Assistant: assistantSystem,
	}
}
