package sessions

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/regulaai/regula/pkg/handlers"
)

type ctxKey struct{}

// FromContext returns the session ID attached by Require or RequireView.
// The second return is false on requests that bypassed the middleware.
func FromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(ctxKey{}).(uuid.UUID)
	return id, ok
}

// Require returns middleware that rejects requests without a live session
// cookie with a 401 JSON error. The session ID is attached to the request
// context for downstream handlers.
func Require(store *Store, logger *slog.Logger) func(http.Handler) http.Handler {
	logger = logger.With("middleware", "sessions")
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := sessionID(r)
			if !ok || !store.Valid(id) {
				handlers.RespondError(w, logger, http.StatusUnauthorized, ErrNoSession)
				return
			}
			next.ServeHTTP(w, r.WithContext(
				context.WithValue(r.Context(), ctxKey{}, id),
			))
		})
	}
}

// RequireView returns middleware for server-rendered views: requests without
// a live session are redirected to the login view instead of receiving JSON.
func RequireView(store *Store, loginPath string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := sessionID(r)
			if !ok || !store.Valid(id) {
				http.Redirect(w, r, loginPath, http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r.WithContext(
				context.WithValue(r.Context(), ctxKey{}, id),
			))
		})
	}
}

func sessionID(r *http.Request) (uuid.UUID, bool) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(cookie.Value)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
