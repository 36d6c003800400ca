package service

import "context"

// MailSender defines the interface for e-mail escalation of high-priority
// notifications. Implementations are optional; when absent the dispatcher
// skips escalation.
type MailSender interface {
	// Send delivers a plain-text message to the recipient address.
	Send(ctx context.Context, to, subject, body string) error
}
