package assistant_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/regulaai/regula/internal/assistant"
	"github.com/regulaai/regula/internal/sessions"
	"github.com/regulaai/regula/pkg/routes"
)

func newAssistantMux(t *testing.T, fake *fakeModel) (*http.ServeMux, *sessions.Store, uuid.UUID) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := sessions.NewStore(time.Hour, logger)
	sys := assistant.New(fake, store, 6000, time.Minute, logger)

	id := store.Issue()
	if err := store.SetContract(id, sessions.Contract{Text: "contract text", Filename: "c.pdf"}); err != nil {
		t.Fatalf("set contract: %v", err)
	}

	mux := http.NewServeMux()
	routes.Register(mux, sys.Handler().Routes().Wrap(sessions.Require(store, logger)))
	return mux, store, id
}

func request(id uuid.UUID, method, path, body string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.AddCookie(&http.Cookie{Name: sessions.CookieName, Value: id.String()})
	return req
}

func TestAskAppendsHistory(t *testing.T) {
	fake := &fakeModel{answer: "the answer"}
	mux, store, id := newAssistantMux(t, fake)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, request(id, "POST", "/assistant/chat", `{"question":"what?"}`))

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var exchange sessions.Exchange
	if err := json.Unmarshal(rec.Body.Bytes(), &exchange); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if exchange.Question != "what?" || exchange.Answer != "the answer" {
		t.Errorf("exchange: got %+v", exchange)
	}

	history, err := store.History(id)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("history length: got %d, want 1", len(history))
	}
}

func TestAskEmptyQuestion(t *testing.T) {
	fake := &fakeModel{answer: "unused"}
	mux, store, id := newAssistantMux(t, fake)

	tests := []struct {
		name string
		body string
	}{
		{"blank question", `{"question":"   "}`},
		{"missing field", `{}`},
		{"malformed body", `not json`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, request(id, "POST", "/assistant/chat", tt.body))

			if rec.Code != http.StatusBadRequest {
				t.Errorf("status: got %d, want 400", rec.Code)
			}
		})
	}

	history, _ := store.History(id)
	if len(history) != 0 {
		t.Errorf("rejected questions should not reach history: got %d", len(history))
	}
}

func TestHistoryNewestFirst(t *testing.T) {
	fake := &fakeModel{answer: "a"}
	mux, store, id := newAssistantMux(t, fake)

	for _, q := range []string{"first", "second", "third"} {
		store.AppendExchange(id, sessions.Exchange{Question: q, AskedAt: time.Now()})
	}

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, request(id, "GET", "/assistant/chat", ""))

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}

	var history []sessions.Exchange
	if err := json.Unmarshal(rec.Body.Bytes(), &history); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	want := []string{"third", "second", "first"}
	if len(history) != len(want) {
		t.Fatalf("history length: got %d, want %d", len(history), len(want))
	}
	for i, q := range want {
		if history[i].Question != q {
			t.Errorf("history[%d]: got %q, want %q", i, history[i].Question, q)
		}
	}
}

func TestImproveStoresResult(t *testing.T) {
	fake := &fakeModel{answer: "improved contract text"}
	mux, store, id := newAssistantMux(t, fake)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, request(id, "POST", "/assistant/improve", ""))

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200: %s", rec.Code, rec.Body.String())
	}

	improved, err := store.Improved(id)
	if err != nil {
		t.Fatalf("improved: %v", err)
	}
	if improved != "improved contract text" {
		t.Errorf("improved: got %q", improved)
	}

	// The GET endpoint returns the stored text on later visits.
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, request(id, "GET", "/assistant/improve", ""))

	var resp assistant.ImprovedResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Improved != "improved contract text" {
		t.Errorf("improved response: got %q", resp.Improved)
	}
}

func TestAssistantRequiresSession(t *testing.T) {
	fake := &fakeModel{answer: "a"}
	mux, _, _ := newAssistantMux(t, fake)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("GET", "/assistant/chat", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status: got %d, want 401", rec.Code)
	}
}
