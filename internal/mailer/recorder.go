package mailer

import (
	"context"
	"sync"

	"github.com/loveplan/backend/internal/domain"
)

// Recorder is an in-memory Sender that captures messages instead of
// delivering them. Set Err to make every Send fail.
type Recorder struct {
	mu     sync.Mutex
	outbox []domain.MailMessage
	Err    error
}

// Send implements Sender.
func (r *Recorder) Send(_ context.Context, msg *domain.MailMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.outbox = append(r.outbox, *msg)
	return nil
}

// Outbox returns a copy of the messages sent so far.
func (r *Recorder) Outbox() []domain.MailMessage {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.MailMessage, len(r.outbox))
	copy(out, r.outbox)
	return out
}
