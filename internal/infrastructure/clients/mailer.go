package clients

import (
	"context"
	"fmt"
	"net/smtp"

	"github.com/domodwyer/mailyak/v3"

	"tours/internal/config"
	"tours/internal/entities"
)

type SMTPMailer struct {
	addr     string
	auth     smtp.Auth
	from     string
	fromName string
}

func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	var auth smtp.Auth
	if cfg.User != "" {
		auth = smtp.PlainAuth("", cfg.User, cfg.Password, cfg.Host)
	}

	return &SMTPMailer{
		addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		auth:     auth,
		from:     cfg.From,
		fromName: cfg.FromName,
	}
}

func (m *SMTPMailer) Send(ctx context.Context, email entities.Email) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	mail := mailyak.New(m.addr, m.auth)
	mail.To(email.To...)
	mail.From(m.from)
	mail.FromName(m.fromName)
	mail.Subject(email.Subject)
	mail.HTML().Set(email.HTML)

	if err := mail.Send(); err != nil {
		return fmt.Errorf("error sending email %q: %w", email.Subject, err)
	}

	return nil
}
