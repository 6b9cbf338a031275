package analysis

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/regulaai/regula/internal/sessions"
	"github.com/regulaai/regula/pkg/handlers"
	"github.com/regulaai/regula/pkg/routes"
)

// Handler provides HTTP endpoints for the risk dashboard.
type Handler struct {
	sys    System
	store  *sessions.Store
	logger *slog.Logger
}

// Dashboard is the analysis payload rendered by the risk dashboard view.
// Safe is the remainder of the 100-point scale used by the donut chart.
type Dashboard struct {
	RiskReport
	Safe int `json:"safe"`
}

// SendRequest carries the recipient address for report delivery.
type SendRequest struct {
	Recipient string `json:"recipient"`
}

// NewHandler creates a Handler with the given system, session store, and logger.
func NewHandler(sys System, store *sessions.Store, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		store:  store,
		logger: logger.With("handler", "analysis"),
	}
}

// Routes returns the route group definition for analysis endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/analysis",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.Analyze},
			{Method: "GET", Pattern: "/report", Handler: h.DownloadReport},
			{Method: "POST", Pattern: "/report/send", Handler: h.SendReport},
		},
	}
}

// Analyze scores the session's contract and returns the dashboard payload.
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	text, ok := h.contractText(w, r)
	if !ok {
		return
	}

	report := h.sys.Analyze(text)
	handlers.RespondJSON(w, http.StatusOK, Dashboard{
		RiskReport: report,
		Safe:       100 - report.Score,
	})
}

// DownloadReport renders the compliance report PDF for download.
func (h *Handler) DownloadReport(w http.ResponseWriter, r *http.Request) {
	text, ok := h.contractText(w, r)
	if !ok {
		return
	}

	report, err := h.sys.Report(text)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set(
		"Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", attachmentFilename),
	)
	w.WriteHeader(http.StatusOK)
	w.Write(report)
}

// SendReport renders the compliance report and emails it to the requested
// recipient in a single synchronous attempt.
func (h *Handler) SendReport(w http.ResponseWriter, r *http.Request) {
	text, ok := h.contractText(w, r)
	if !ok {
		return
	}

	var req SendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	if err := h.sys.Deliver(r.Context(), req.Recipient, text); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, map[string]string{
		"status":    "sent",
		"recipient": req.Recipient,
	})
}

// contractText fetches the session's contract text, rejecting requests made
// before any contract was uploaded. The dashboard has nothing to show for an
// empty session even though scoring empty text is itself well defined.
func (h *Handler) contractText(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, _ := sessions.FromContext(r.Context())

	contract, err := h.store.Contract(id)
	if err != nil {
		handlers.RespondError(w, h.logger, sessions.MapHTTPStatus(err), err)
		return "", false
	}
	if contract.Text == "" {
		handlers.RespondError(w, h.logger, MapHTTPStatus(ErrNoContract), ErrNoContract)
		return "", false
	}
	return contract.Text, true
}
