package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"text/template"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/loveplan/backend/internal/config"
	"github.com/loveplan/backend/internal/contextkeys"
	"github.com/loveplan/backend/internal/domain"
	"github.com/loveplan/backend/internal/mailer"
)

// SenderProvider hands out the mail sender for one submission.
type SenderProvider interface {
	Sender() (mailer.Sender, error)
}

// SenderFunc adapts a function to SenderProvider.
type SenderFunc func() (mailer.Sender, error)

// Sender implements SenderProvider.
func (f SenderFunc) Sender() (mailer.Sender, error) {
	return f()
}

// SharedSender always returns s. Used by the long-running server, which
// builds its transport once at start-up.
func SharedSender(s mailer.Sender) SenderProvider {
	return SenderFunc(func() (mailer.Sender, error) { return s, nil })
}

// PerRequestSMTP builds a fresh SMTP sender on every call, failing with a
// missing-transport-config error when credentials are absent.
func PerRequestSMTP(cfg config.SMTPConfig) SenderProvider {
	return SenderFunc(func() (mailer.Sender, error) {
		s, err := mailer.NewSMTPSender(cfg)
		if err != nil {
			return nil, err
		}
		return s, nil
	})
}

// Body values are interpolated verbatim: text/template does not escape.
var bodyTmpl = template.Must(template.New("plan").Parse(`
<h3>📍 {{.Place}}</h3>
<p><b>🕒</b> {{.Date}} {{.Time}}</p>
<p><b>💰</b> {{.Money}}</p>
<p><b>🎨 Vibe:</b> {{.Vibes}}</p>
<p><b>🗺️ Lịch trình:</b></p>
<ul>{{range .Steps}}<li>{{.}}</li>{{end}}</ul>
<p>{{.Note}}</p>
`))

type bodyData struct {
	Place, Date, Time, Money, Vibes, Note string
	Steps                                 []string
}

// PlanService validates plan submissions and mails them to the recipient.
type PlanService struct {
	senders     SenderProvider
	defaultTo   string
	fromName    string
	fromAddress string
	validate    *validator.Validate
}

// NewPlanService creates a new PlanService. The sender address is the SMTP
// login, and defaultTo is used when a submission carries no to_email.
func NewPlanService(senders SenderProvider, smtp config.SMTPConfig, defaultTo string) *PlanService {
	return &PlanService{
		senders:     senders,
		defaultTo:   defaultTo,
		fromName:    smtp.FromName,
		fromAddress: smtp.User,
		validate:    validator.New(),
	}
}

// Submit validates the plan and sends exactly one email for it. Every
// validation failure returns before the mail sender is touched.
func (s *PlanService) Submit(ctx context.Context, sub *domain.PlanSubmission) error {
	if err := s.validate.Struct(sub); err != nil {
		return domain.ErrMissingRequiredField(err)
	}

	sender, err := s.senders.Sender()
	if err != nil {
		return err
	}

	to := ResolveRecipient(sub.ToEmail.String(), s.defaultTo)
	if to == "" {
		return domain.ErrMissingRecipient()
	}

	html, err := RenderBody(sub)
	if err != nil {
		return domain.ErrInternal(err)
	}

	msg := &domain.MailMessage{
		ID:          messageID(ctx),
		FromName:    s.fromName,
		FromAddress: s.fromAddress,
		To:          to,
		Subject:     Subject(sub),
		HTML:        html,
	}

	if err := sender.Send(ctx, msg); err != nil {
		log.Printf("❌ PLAN ERROR: plan %s to %s: %v", msg.ID, msg.To, err)
		return domain.ErrMailSend(err)
	}

	log.Printf("💌 Plan %s sent to %s", msg.ID, msg.To)
	return nil
}

// messageID reuses the HTTP request ID so request logs and the mail's
// X-Plan-ID header line up.
func messageID(ctx context.Context) string {
	if id, ok := ctx.Value(contextkeys.RequestID).(string); ok && id != "" {
		return id
	}
	return uuid.New().String()
}

// ResolveRecipient prefers the per-request override over the default.
func ResolveRecipient(override, fallback string) string {
	if override != "" {
		return override
	}
	return fallback
}

// Subject builds the email subject line.
func Subject(sub *domain.PlanSubmission) string {
	return fmt.Sprintf("💌 Kèo hẹn Cầu Giấy – %s %s", sub.Date, sub.Time)
}

// SplitSteps splits a pipe-delimited schedule, trimming each step and
// dropping empty ones.
func SplitSteps(steps string) []string {
	var out []string
	for _, s := range strings.Split(steps, "|") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// RenderBody renders the HTML email body.
func RenderBody(sub *domain.PlanSubmission) (string, error) {
	var b strings.Builder
	err := bodyTmpl.Execute(&b, bodyData{
		Place: sub.Place.String(),
		Date:  sub.Date.String(),
		Time:  sub.Time.String(),
		Money: sub.Money.String(),
		Vibes: sub.Vibes.String(),
		Note:  sub.Note.String(),
		Steps: SplitSteps(sub.Steps.String()),
	})
	if err != nil {
		return "", err
	}
	return b.String(), nil
}
