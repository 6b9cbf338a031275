// Package assistant implements the LLM-backed question answering and
// contract improvement domain for Regula. Both operations are single-shot
// prompt-template calls against an OpenAI-compatible completion endpoint:
// no streaming, no multi-turn context, no retry.
package assistant

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"github.com/regulaai/regula/internal/sessions"
)

// System defines the public contract for assistant operations.
type System interface {
	Handler() *Handler
	Ask(ctx context.Context, contract, question string) (string, error)
	Improve(ctx context.Context, contract string) (string, error)
}

type system struct {
	model    model.BaseChatModel
	store    *sessions.Store
	maxChars int
	timeout  time.Duration
	logger   *slog.Logger
}

// New creates the assistant system over the given completion model. Contract
// text is truncated to maxChars before templating; every call is bounded by
// the configured timeout.
func New(
	chatModel model.BaseChatModel,
	store *sessions.Store,
	maxChars int,
	timeout time.Duration,
	logger *slog.Logger,
) System {
	return &system{
		model:    chatModel,
		store:    store,
		maxChars: maxChars,
		timeout:  timeout,
		logger:   logger.With("system", "assistant"),
	}
}

func (s *system) Handler() *Handler {
	return NewHandler(s, s.store, s.logger)
}

// Ask answers a question about the contract, returning the first
// completion's text verbatim.
func (s *system) Ask(ctx context.Context, contract, question string) (string, error) {
	return s.complete(ctx, askPrompt(contract, question, s.maxChars))
}

// Improve rewrites the contract for compliance, returning the first
// completion's text verbatim.
func (s *system) Improve(ctx context.Context, contract string) (string, error) {
	return s.complete(ctx, improvePrompt(contract, s.maxChars))
}

func (s *system) complete(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.model.Generate(ctx, []*schema.Message{
		schema.UserMessage(prompt),
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrCompletionFailed, err)
	}

	return resp.Content, nil
}
