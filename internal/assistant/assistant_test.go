package assistant_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"github.com/regulaai/regula/internal/assistant"
	"github.com/regulaai/regula/internal/sessions"
)

// fakeModel records the last prompt and returns a canned completion.
type fakeModel struct {
	prompt string
	answer string
	err    error
}

func (f *fakeModel) Generate(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.Message, error) {
	if len(input) != 1 {
		return nil, errors.New("expected a single message")
	}
	f.prompt = input[0].Content
	if f.err != nil {
		return nil, f.err
	}
	return schema.AssistantMessage(f.answer, nil), nil
}

func (f *fakeModel) Stream(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	return nil, errors.New("streaming not supported")
}

func newSystem(t *testing.T, fake *fakeModel, maxChars int) assistant.System {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := sessions.NewStore(time.Hour, logger)
	return assistant.New(fake, store, maxChars, time.Minute, logger)
}

func TestAskPromptShape(t *testing.T) {
	fake := &fakeModel{answer: "the termination clause allows 30 days notice"}
	sys := newSystem(t, fake, 6000)

	answer, err := sys.Ask(context.Background(), "contract body", "what about termination?")
	if err != nil {
		t.Fatalf("ask failed: %v", err)
	}
	if answer != fake.answer {
		t.Errorf("answer: got %q, want %q", answer, fake.answer)
	}

	for _, part := range []string{
		"You are legal compliance AI.",
		"contract body",
		"what about termination?",
		"Answer professionally:",
	} {
		if !strings.Contains(fake.prompt, part) {
			t.Errorf("prompt missing %q:\n%s", part, fake.prompt)
		}
	}
}

func TestImprovePromptShape(t *testing.T) {
	fake := &fakeModel{answer: "improved draft"}
	sys := newSystem(t, fake, 6000)

	improved, err := sys.Improve(context.Background(), "contract body")
	if err != nil {
		t.Fatalf("improve failed: %v", err)
	}
	if improved != "improved draft" {
		t.Errorf("improved: got %q", improved)
	}

	if !strings.Contains(fake.prompt, "Improve this contract and make it compliant:") {
		t.Errorf("prompt missing improve instruction:\n%s", fake.prompt)
	}
	if !strings.Contains(fake.prompt, "contract body") {
		t.Errorf("prompt missing contract text:\n%s", fake.prompt)
	}
}

func TestContractTruncation(t *testing.T) {
	fake := &fakeModel{answer: "ok"}
	sys := newSystem(t, fake, 100)

	contract := strings.Repeat("x", 500)
	if _, err := sys.Ask(context.Background(), contract, "q"); err != nil {
		t.Fatalf("ask failed: %v", err)
	}

	if strings.Contains(fake.prompt, strings.Repeat("x", 101)) {
		t.Error("contract was not truncated")
	}
	if !strings.Contains(fake.prompt, strings.Repeat("x", 100)) {
		t.Error("truncated contract missing from prompt")
	}
}

func TestTruncationPreservesRuneBoundary(t *testing.T) {
	fake := &fakeModel{answer: "ok"}
	sys := newSystem(t, fake, 10)

	// Nine ASCII bytes followed by a three-byte rune; a naive byte cut at 10
	// would tear the rune.
	contract := "aaaaaaaaa\u20ac"
	if _, err := sys.Ask(context.Background(), contract, "q"); err != nil {
		t.Fatalf("ask failed: %v", err)
	}

	if !utf8.ValidString(fake.prompt) {
		t.Error("prompt contains a torn rune")
	}
	if !strings.Contains(fake.prompt, "aaaaaaaaa") {
		t.Error("prompt missing truncated contract prefix")
	}
}

func TestTruncationKeepsTextAfterInvalidByte(t *testing.T) {
	fake := &fakeModel{answer: "ok"}
	sys := newSystem(t, fake, 100)

	// Extracted PDF text occasionally carries a stray invalid byte. The cut
	// must stay at the byte limit, not retreat to the invalid byte.
	contract := "aaaaaaaaaa\xff" + strings.Repeat("b", 500)
	if _, err := sys.Ask(context.Background(), contract, "q"); err != nil {
		t.Fatalf("ask failed: %v", err)
	}

	if !strings.Contains(fake.prompt, strings.Repeat("b", 89)) {
		t.Error("truncation dropped text after the invalid byte")
	}
	if strings.Contains(fake.prompt, strings.Repeat("b", 90)) {
		t.Error("contract was not truncated to the byte limit")
	}
}

func TestCompletionFailure(t *testing.T) {
	fake := &fakeModel{err: errors.New("upstream unavailable")}
	sys := newSystem(t, fake, 6000)

	_, err := sys.Ask(context.Background(), "contract", "question")
	if !errors.Is(err, assistant.ErrCompletionFailed) {
		t.Errorf("error: got %v, want ErrCompletionFailed", err)
	}
}
