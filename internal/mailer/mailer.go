// Package mailer delivers composed plan emails over SMTP.
package mailer

import (
	"context"
	"fmt"
	"time"

	"github.com/loveplan/backend/internal/config"
	"github.com/loveplan/backend/internal/domain"
	"github.com/wneessen/go-mail"
)

// HeaderPlanID carries the plan message ID for correlating logs with mails.
const HeaderPlanID mail.Header = "X-Plan-ID"

// Sender delivers a composed plan email.
type Sender interface {
	Send(ctx context.Context, msg *domain.MailMessage) error
}

// SMTPSender sends mail through an SMTP relay. It holds settings only; each
// Send dials its own connection, so one SMTPSender can be shared by
// concurrent requests.
type SMTPSender struct {
	cfg     config.SMTPConfig
	timeout time.Duration
}

// NewSMTPSender creates a new SMTPSender. It does not connect.
func NewSMTPSender(cfg config.SMTPConfig) (*SMTPSender, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &SMTPSender{cfg: cfg, timeout: 30 * time.Second}, nil
}

func (s *SMTPSender) client() (*mail.Client, error) {
	opts := []mail.Option{
		mail.WithPort(s.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(s.cfg.User),
		mail.WithPassword(s.cfg.Pass),
		mail.WithTimeout(s.timeout),
	}
	if s.cfg.Secure {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSOpportunistic))
	}
	return mail.NewClient(s.cfg.Host, opts...)
}

// Verify dials the relay and authenticates once, then hangs up.
func (s *SMTPSender) Verify(ctx context.Context) error {
	c, err := s.client()
	if err != nil {
		return err
	}
	if err := c.DialWithContext(ctx); err != nil {
		return err
	}
	return c.Close()
}

// Send implements Sender.
func (s *SMTPSender) Send(ctx context.Context, msg *domain.MailMessage) error {
	m, err := BuildMsg(msg)
	if err != nil {
		return err
	}

	c, err := s.client()
	if err != nil {
		return err
	}
	return c.DialAndSendWithContext(ctx, m)
}

// BuildMsg converts a MailMessage into a go-mail message.
func BuildMsg(msg *domain.MailMessage) (*mail.Msg, error) {
	m := mail.NewMsg()
	if err := m.FromFormat(msg.FromName, msg.FromAddress); err != nil {
		return nil, fmt.Errorf("invalid sender %q: %w", msg.FromAddress, err)
	}
	if err := m.To(msg.To); err != nil {
		return nil, fmt.Errorf("invalid recipient %q: %w", msg.To, err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextHTML, msg.HTML)
	if msg.ID != "" {
		m.SetGenHeader(HeaderPlanID, msg.ID)
	}
	return m, nil
}
