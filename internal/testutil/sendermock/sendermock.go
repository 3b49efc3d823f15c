package sendermock

import (
	"context"
	"sync"

	"fintech-directory/internal/domain/notification"
)

// Sender records every message and optionally fails.
type Sender struct {
	mu   sync.Mutex
	Err  error
	sent []notification.Message
}

func (s *Sender) Send(_ context.Context, m notification.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, m)
	return s.Err
}

func (s *Sender) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sent)
}

func (s *Sender) Sent() []notification.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]notification.Message(nil), s.sent...)
}

// ByTemplate returns the messages sent with t, in send order.
func (s *Sender) ByTemplate(t notification.Template) []notification.Message {
	var out []notification.Message
	for _, m := range s.Sent() {
		if m.Template == t {
			out = append(out, m)
		}
	}
	return out
}
