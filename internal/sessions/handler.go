package sessions

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/regulaai/regula/pkg/handlers"
	"github.com/regulaai/regula/pkg/routes"
)

// CookieName is the session cookie issued on successful login.
const CookieName = "regula_session"

// Handler provides HTTP endpoints for login and logout.
type Handler struct {
	store    *Store
	username string
	password string
	logger   *slog.Logger
}

// LoginRequest carries the credential pair submitted by the login form.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// NewHandler creates a Handler with the configured credential pair.
func NewHandler(store *Store, username, password string, logger *slog.Logger) *Handler {
	return &Handler{
		store:    store,
		username: username,
		password: password,
		logger:   logger.With("handler", "sessions"),
	}
}

// Routes returns the route group definition for auth endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/auth",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "/login", Handler: h.Login},
			{Method: "POST", Pattern: "/logout", Handler: h.Logout},
		},
	}
}

// Login checks the submitted credentials against the configured pair with
// exact string equality. Success issues a session cookie; any other pair
// leaves state unchanged and reports the failure.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidCredentials)
		return
	}

	if req.Username != h.username || req.Password != h.password {
		handlers.RespondError(w, h.logger, http.StatusUnauthorized, ErrInvalidCredentials)
		return
	}

	id := h.store.Issue()
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    id.String(),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "authenticated"})
}

// Logout revokes the session named by the cookie and clears it. The session's
// contract text and chat history are discarded with the session record.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if id, ok := sessionID(r); ok {
		h.store.Revoke(id)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
	})

	handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "logged out"})
}
