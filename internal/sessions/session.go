// Package sessions implements the session domain for Regula.
// It owns per-user state (contract text, chat history, improved text),
// cookie-based session issuance, and the credential check that gates
// every other domain.
package sessions

import (
	"time"

	"github.com/google/uuid"
)

// Exchange is a single question/answer pair in a session's chat history.
type Exchange struct {
	Question string    `json:"question"`
	Answer   string    `json:"answer"`
	AskedAt  time.Time `json:"asked_at"`
}

// Contract is the extracted text of the currently loaded contract along
// with its upload metadata. Text may be empty when no contract is loaded.
type Contract struct {
	Text     string `json:"-"`
	Filename string `json:"filename"`
	Pages    int    `json:"pages"`
}

// Characters returns the length of the extracted text.
func (c Contract) Characters() int {
	return len(c.Text)
}

// Session is the state associated with one logged-in user, from login to
// logout. Contract text is replaced wholesale on each upload; chat history
// is append-only and unbounded for the session lifetime.
type Session struct {
	ID           uuid.UUID
	Contract     Contract
	ChatHistory  []Exchange
	LastImproved string
	CreatedAt    time.Time
	LastSeen     time.Time
}
