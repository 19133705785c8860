package email

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"

	"threadquote/internal/usecase/interfaces"

	gomail "gopkg.in/gomail.v2"
)

var ErrMissingEmailConfig = errors.New("missing EMAIL_HOST or EMAIL_USER")

// SMTPSender delivers quote notification mail over SMTP.
//
// Env vars:
//   - EMAIL_HOST (required)
//   - EMAIL_PORT (default: 587)
//   - EMAIL_USER (required; also the From address)
//   - EMAIL_PASS

type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
}

var _ interfaces.IEmailSender = (*SMTPSender)(nil)

func NewSMTPSender() (*SMTPSender, error) {
	host := os.Getenv("EMAIL_HOST")
	user := os.Getenv("EMAIL_USER")
	if host == "" || user == "" {
		log.Printf("[email][smtp] missing EMAIL_HOST or EMAIL_USER")
		return nil, ErrMissingEmailConfig
	}

	port := 587
	if v := os.Getenv("EMAIL_PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid EMAIL_PORT %q: %w", v, err)
		}
		port = p
	}

	log.Printf("[email][smtp] sender initialized host=%s port=%d", host, port)
	return &SMTPSender{
		dialer: gomail.NewDialer(host, port, user, os.Getenv("EMAIL_PASS")),
		from:   user,
	}, nil
}

func (s *SMTPSender) Send(ctx context.Context, msg interfaces.EmailMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.HTML)

	if err := s.dialer.DialAndSend(m); err != nil {
		log.Printf("[email][smtp] send failed to=%s err=%v", msg.To, err)
		return fmt.Errorf("smtp send: %w", err)
	}

	log.Printf("[email][smtp] send success to=%s", msg.To)
	return nil
}
