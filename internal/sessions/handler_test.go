package sessions_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/regulaai/regula/internal/sessions"
	"github.com/regulaai/regula/pkg/routes"
)

func newAuthMux(t *testing.T) (*http.ServeMux, *sessions.Store) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := sessions.NewStore(time.Hour, logger)
	handler := sessions.NewHandler(store, "admin", "secret", logger)

	mux := http.NewServeMux()
	routes.Register(mux, handler.Routes())
	return mux, store
}

func TestLoginSuccess(t *testing.T) {
	mux, store := newAuthMux(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/login",
		strings.NewReader(`{"username":"admin","password":"secret"}`))
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}

	res := rec.Result()
	defer res.Body.Close()

	var cookie *http.Cookie
	for _, c := range res.Cookies() {
		if c.Name == sessions.CookieName {
			cookie = c
		}
	}
	if cookie == nil {
		t.Fatal("session cookie not set")
	}
	if !cookie.HttpOnly {
		t.Error("session cookie should be http-only")
	}
	if store.Count() != 1 {
		t.Errorf("sessions: got %d, want 1", store.Count())
	}
}

func TestLoginRejected(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"wrong password", `{"username":"admin","password":"wrong"}`},
		{"wrong username", `{"username":"root","password":"secret"}`},
		{"case mismatch", `{"username":"Admin","password":"secret"}`},
		{"padded username", `{"username":" admin","password":"secret"}`},
		{"empty credentials", `{"username":"","password":""}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux, store := newAuthMux(t)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest("POST", "/auth/login", strings.NewReader(tt.body))
			mux.ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Errorf("status: got %d, want 401", rec.Code)
			}
			if store.Count() != 0 {
				t.Errorf("sessions: got %d, want 0", store.Count())
			}
		})
	}
}

func TestLoginMalformedBody(t *testing.T) {
	mux, _ := newAuthMux(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/login", strings.NewReader("not json"))
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want 400", rec.Code)
	}
}

func TestLogoutRevokesSession(t *testing.T) {
	mux, store := newAuthMux(t)
	id := store.Issue()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: sessions.CookieName, Value: id.String()})
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
	if store.Valid(id) {
		t.Error("session should be revoked after logout")
	}

	res := rec.Result()
	defer res.Body.Close()
	for _, c := range res.Cookies() {
		if c.Name == sessions.CookieName && c.MaxAge >= 0 {
			t.Error("logout should expire the session cookie")
		}
	}
}

func TestLogoutWithoutSession(t *testing.T) {
	mux, _ := newAuthMux(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/logout", nil)
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status: got %d, want 200", rec.Code)
	}
}
