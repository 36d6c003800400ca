// Package mail provides the SMTP implementation of the escalation mail sender.
package mail

import (
	"context"
	"log/slog"

	"zara/config"
	"zara/internal/domain/service"

	"github.com/pkg/errors"
	"gopkg.in/gomail.v2"
)

// gomailSender delivers escalation e-mails over SMTP.
type gomailSender struct {
	dialer *gomail.Dialer
	from   string
	logger *slog.Logger
}

// NewGomailSender creates an SMTP mail sender from the mail configuration.
// Returns nil when no SMTP host is configured, which disables escalation.
func NewGomailSender(cfg *config.Config, logger *slog.Logger) service.MailSender {
	if cfg.Mail == nil || cfg.Mail.Host == "" {
		logger.Info("SMTP not configured, mail escalation disabled")

		return nil
	}

	return &gomailSender{
		dialer: gomail.NewDialer(cfg.Mail.Host, cfg.Mail.Port, cfg.Mail.Username, cfg.Mail.Password),
		from:   cfg.Mail.From,
		logger: logger,
	}
}

// Send delivers a plain-text message to the recipient address. gomail dials
// synchronously, so the context is only honored up front.
func (s *gomailSender) Send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", s.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := s.dialer.DialAndSend(msg); err != nil {
		return errors.Wrap(err, "failed to send mail")
	}

	s.logger.Debug("Escalation mail sent", slog.String("to", to))

	return nil
}
