package contracts

import (
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/regulaai/regula/internal/sessions"
	"github.com/regulaai/regula/pkg/handlers"
	"github.com/regulaai/regula/pkg/routes"
)

// Handler provides HTTP endpoints for contract upload and inspection.
type Handler struct {
	sys           System
	store         *sessions.Store
	logger        *slog.Logger
	maxUploadSize int64
}

// NewHandler creates a Handler with the given system, session store, logger,
// and upload size limit.
func NewHandler(
	sys System,
	store *sessions.Store,
	logger *slog.Logger,
	maxUploadSize int64,
) *Handler {
	return &Handler{
		sys:           sys,
		store:         store,
		logger:        logger.With("handler", "contracts"),
		maxUploadSize: maxUploadSize,
	}
}

// Routes returns the route group definition for contract endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/contracts",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "", Handler: h.Upload},
			{Method: "GET", Pattern: "/current", Handler: h.Current},
		},
	}
}

// Upload processes a multipart form upload containing a PDF contract.
// The extracted text replaces the session's contract wholesale.
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	id, _ := sessions.FromContext(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		handlers.RespondError(w, h.logger, http.StatusRequestEntityTooLarge, ErrFileTooLarge)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidFile)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidFile)
		return
	}

	contentType := detectContentType(header.Header.Get("Content-Type"), data)
	if contentType != "application/pdf" {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrNotPDF)
		return
	}

	extraction, err := h.sys.Extract(r.Context(), data, header.Filename)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	if err := h.store.SetContract(id, sessions.Contract{
		Text:     extraction.Text,
		Filename: extraction.Filename,
		Pages:    extraction.Pages,
	}); err != nil {
		handlers.RespondError(w, h.logger, sessions.MapHTTPStatus(err), err)
		return
	}

	h.logger.Info(
		"contract uploaded",
		"filename", extraction.Filename,
		"pages", extraction.Pages,
		"characters", len(extraction.Text),
	)

	handlers.RespondJSON(w, http.StatusCreated, Summary{
		Filename:   extraction.Filename,
		Pages:      extraction.Pages,
		Characters: len(extraction.Text),
	})
}

// Current returns a summary of the session's loaded contract. An empty
// summary with zero characters means no contract has been uploaded yet.
func (h *Handler) Current(w http.ResponseWriter, r *http.Request) {
	id, _ := sessions.FromContext(r.Context())

	contract, err := h.store.Contract(id)
	if err != nil {
		handlers.RespondError(w, h.logger, sessions.MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, Summary{
		Filename:   contract.Filename,
		Pages:      contract.Pages,
		Characters: contract.Characters(),
	})
}

func detectContentType(header string, data []byte) string {
	header = strings.TrimSpace(header)
	if header != "" && header != "application/octet-stream" {
		if i := strings.Index(header, ";"); i >= 0 {
			header = strings.TrimSpace(header[:i])
		}
		return header
	}
	return http.DetectContentType(data)
}
