package notify

import (
	"context"
	"sync"
	"time"

	"fintech-directory/internal/domain/notification"

	"go.uber.org/zap"
)

type Config struct {
	From       string
	AdminEmail string
	Site       Site
	Timeout    time.Duration
}

var _ notification.Dispatcher = (*Dispatcher)(nil)

// Dispatcher renders envelopes and hands them to a Sender.
// Dispatch is fire-and-forget; Wait drains in-flight sends on shutdown.
type Dispatcher struct {
	sender notification.Sender
	log    *zap.Logger
	cfg    Config
	wg     sync.WaitGroup
}

func NewDispatcher(sender notification.Sender, log *zap.Logger, cfg Config) *Dispatcher {
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &Dispatcher{sender: sender, log: log, cfg: cfg}
}

func (d *Dispatcher) AdminEmail() string { return d.cfg.AdminEmail }

// Send renders and delivers synchronously, returning the transport error.
func (d *Dispatcher) Send(ctx context.Context, e notification.Envelope) error {
	subject, html, err := Render(e.Template, d.cfg.Site, e.Data)
	if err != nil {
		return err
	}
	return d.sender.Send(ctx, notification.Message{
		Template: e.Template,
		From:     d.cfg.From,
		To:       e.To,
		ReplyTo:  e.ReplyTo,
		Subject:  subject,
		HTML:     html,
	})
}

// Dispatch sends on a detached goroutine with its own deadline. Failures are logged only.
func (d *Dispatcher) Dispatch(e notification.Envelope) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), d.cfg.Timeout)
		defer cancel()
		if err := d.Send(ctx, e); err != nil {
			d.log.Warn("notification failed",
				zap.String("template", string(e.Template)),
				zap.String("to", e.To),
				zap.Error(err))
		}
	}()
}

// Wait blocks until every dispatched send has returned.
func (d *Dispatcher) Wait() { d.wg.Wait() }
