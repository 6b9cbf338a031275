package assistant

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/regulaai/regula/internal/sessions"
	"github.com/regulaai/regula/pkg/handlers"
	"github.com/regulaai/regula/pkg/routes"
)

// Handler provides HTTP endpoints for the chatbot and improve views.
type Handler struct {
	sys    System
	store  *sessions.Store
	logger *slog.Logger
}

// ChatRequest carries a user question for the chatbot.
type ChatRequest struct {
	Question string `json:"question"`
}

// ImprovedResponse carries the most recent improved contract text.
type ImprovedResponse struct {
	Improved string `json:"improved"`
}

// NewHandler creates a Handler with the given system, session store, and logger.
func NewHandler(sys System, store *sessions.Store, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		store:  store,
		logger: logger.With("handler", "assistant"),
	}
}

// Routes returns the route group definition for assistant endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/assistant",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/chat", Handler: h.History},
			{Method: "POST", Pattern: "/chat", Handler: h.Ask},
			{Method: "GET", Pattern: "/improve", Handler: h.Improved},
			{Method: "POST", Pattern: "/improve", Handler: h.Improve},
		},
	}
}

// Ask forwards a question about the session's contract to the completion
// service and appends the exchange to the session's chat history.
func (h *Handler) Ask(w http.ResponseWriter, r *http.Request) {
	id, _ := sessions.FromContext(r.Context())

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrEmptyQuestion)
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrEmptyQuestion)
		return
	}

	contract, err := h.store.Contract(id)
	if err != nil {
		handlers.RespondError(w, h.logger, sessions.MapHTTPStatus(err), err)
		return
	}

	answer, err := h.sys.Ask(r.Context(), contract.Text, req.Question)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	exchange := sessions.Exchange{
		Question: req.Question,
		Answer:   answer,
		AskedAt:  time.Now(),
	}
	if err := h.store.AppendExchange(id, exchange); err != nil {
		handlers.RespondError(w, h.logger, sessions.MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, exchange)
}

// History returns the session's chat history, newest exchange first.
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	id, _ := sessions.FromContext(r.Context())

	history, err := h.store.History(id)
	if err != nil {
		handlers.RespondError(w, h.logger, sessions.MapHTTPStatus(err), err)
		return
	}

	slices.Reverse(history)
	handlers.RespondJSON(w, http.StatusOK, history)
}

// Improve runs the improve instruction over the session's contract and
// stores the result as the session's last improved text.
func (h *Handler) Improve(w http.ResponseWriter, r *http.Request) {
	id, _ := sessions.FromContext(r.Context())

	contract, err := h.store.Contract(id)
	if err != nil {
		handlers.RespondError(w, h.logger, sessions.MapHTTPStatus(err), err)
		return
	}

	improved, err := h.sys.Improve(r.Context(), contract.Text)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	if err := h.store.SetImproved(id, improved); err != nil {
		handlers.RespondError(w, h.logger, sessions.MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, ImprovedResponse{Improved: improved})
}

// Improved returns the session's last improved text, empty until the
// improve operation has run.
func (h *Handler) Improved(w http.ResponseWriter, r *http.Request) {
	id, _ := sessions.FromContext(r.Context())

	improved, err := h.store.Improved(id)
	if err != nil {
		handlers.RespondError(w, h.logger, sessions.MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, ImprovedResponse{Improved: improved})
}
