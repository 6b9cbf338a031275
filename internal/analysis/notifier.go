package analysis

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/wneessen/go-mail"
)

// Fixed transmission strings for report delivery.
const (
	mailSubject        = "Regula Compliance Report"
	mailBody           = "Compliance Report Attached"
	attachmentFilename = "Compliance_Report.pdf"
)

// Notifier delivers a rendered report as an email attachment.
type Notifier interface {
	Send(ctx context.Context, recipient string, report []byte) error
}

type mailNotifier struct {
	client *mail.Client
	sender string
	logger *slog.Logger
}

// NewNotifier creates a Notifier over the given SMTP client and sender
// identity.
func NewNotifier(client *mail.Client, sender string, logger *slog.Logger) Notifier {
	return &mailNotifier{
		client: client,
		sender: sender,
		logger: logger.With("system", "notifier"),
	}
}

// Send transmits the report synchronously in a single attempt. The recipient
// is validated before any network I/O; relay or delivery failures propagate
// to the caller without retry.
func (n *mailNotifier) Send(ctx context.Context, recipient string, report []byte) error {
	if strings.TrimSpace(recipient) == "" {
		return ErrEmptyRecipient
	}

	msg := mail.NewMsg()
	if err := msg.From(n.sender); err != nil {
		return fmt.Errorf("sender address: %w", err)
	}
	if err := msg.To(recipient); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRecipient, err)
	}

	msg.Subject(mailSubject)
	msg.SetBodyString(mail.TypeTextPlain, mailBody)
	if err := msg.AttachReader(attachmentFilename, bytes.NewReader(report)); err != nil {
		return fmt.Errorf("attach report: %w", err)
	}

	if err := n.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("%w: %w", ErrTransmission, err)
	}

	n.logger.Info("report sent", "recipient", recipient, "bytes", len(report))
	return nil
}
