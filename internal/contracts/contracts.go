// Package contracts implements the contract intake domain for Regula.
// It validates uploaded PDF documents, extracts their plain text page by
// page, and stores the result as the session's current contract.
package contracts

// Extraction is the result of pulling plain text out of an uploaded PDF.
// Text is the concatenation of per-page text in page order; pages without
// extractable text contribute nothing rather than failing the extraction.
type Extraction struct {
	Text     string
	Pages    int
	Filename string
}

// Summary describes the session's current contract for API consumers.
// A zero Characters value is the valid "no contract loaded" state.
type Summary struct {
	Filename   string `json:"filename"`
	Pages      int    `json:"pages"`
	Characters int    `json:"characters"`
}
