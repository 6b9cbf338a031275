package contracts

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"

	einopdf "github.com/cloudwego/eino-ext/components/document/parser/pdf"
	"github.com/cloudwego/eino/components/document/parser"
	pdfcpu "github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/regulaai/regula/internal/sessions"
)

// System defines the public contract for contract intake operations.
type System interface {
	Handler(maxUploadSize int64) *Handler
	Extract(ctx context.Context, data []byte, filename string) (*Extraction, error)
}

type extractor struct {
	store  *sessions.Store
	logger *slog.Logger
}

// New creates a contract intake system backed by the given session store.
func New(store *sessions.Store, logger *slog.Logger) System {
	return &extractor{
		store:  store,
		logger: logger.With("system", "contracts"),
	}
}

func (e *extractor) Handler(maxUploadSize int64) *Handler {
	return NewHandler(e, e.store, e.logger, maxUploadSize)
}

// Extract validates the upload as a PDF, counts its pages, and pulls the
// plain text of every page in order. Pages lacking extractable text are
// treated as empty, never as an error; a text layer that cannot be parsed
// at all degrades to an empty contract rather than failing the upload.
func (e *extractor) Extract(ctx context.Context, data []byte, filename string) (*Extraction, error) {
	pages, err := pdfcpu.PageCount(bytes.NewReader(data), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotPDF, err)
	}

	text, err := e.extractText(ctx, data, filename)
	if err != nil {
		e.logger.Warn("text extraction degraded to empty", "filename", filename, "error", err)
		text = ""
	}

	return &Extraction{
		Text:     text,
		Pages:    pages,
		Filename: filename,
	}, nil
}

func (e *extractor) extractText(ctx context.Context, data []byte, filename string) (string, error) {
	p, err := einopdf.NewPDFParser(ctx, &einopdf.Config{ToPages: true})
	if err != nil {
		return "", fmt.Errorf("create parser: %w", err)
	}

	docs, err := p.Parse(ctx, bytes.NewReader(data), parser.WithURI(filename))
	if err != nil {
		return "", fmt.Errorf("parse pdf: %w", err)
	}

	var sb strings.Builder
	for _, doc := range docs {
		sb.WriteString(doc.Content)
	}
	return sb.String(), nil
}
