package analysis

import (
	"context"
	"log/slog"

	"github.com/regulaai/regula/internal/sessions"
)

// System defines the public contract for risk analysis operations.
type System interface {
	Handler() *Handler
	Analyze(text string) RiskReport
	Report(text string) ([]byte, error)
	Deliver(ctx context.Context, recipient, text string) error
}

type system struct {
	store    *sessions.Store
	notifier Notifier
	logger   *slog.Logger
}

// New creates the analysis system backed by the given session store and
// report notifier.
func New(store *sessions.Store, notifier Notifier, logger *slog.Logger) System {
	return &system{
		store:    store,
		notifier: notifier,
		logger:   logger.With("system", "analysis"),
	}
}

func (s *system) Handler() *Handler {
	return NewHandler(s, s.store, s.logger)
}

// Analyze scores the contract text against the rule table.
func (s *system) Analyze(text string) RiskReport {
	return Score(text)
}

// Report scores the text and renders the compliance report PDF.
func (s *system) Report(text string) ([]byte, error) {
	return BuildReport(Score(text))
}

// Deliver renders the report for the text and emails it to the recipient.
func (s *system) Deliver(ctx context.Context, recipient, text string) error {
	report, err := s.Report(text)
	if err != nil {
		return err
	}
	return s.notifier.Send(ctx, recipient, report)
}
