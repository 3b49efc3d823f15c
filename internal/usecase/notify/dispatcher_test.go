package notify

import (
	"context"
	"errors"
	"testing"

	"fintech-directory/internal/domain/notification"
	"fintech-directory/internal/testutil/sendermock"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestDispatcher_Send(t *testing.T) {
	s := &sendermock.Sender{}
	d := NewDispatcher(s, nil, Config{From: "noreply@x.io", AdminEmail: "admin@x.io", Site: site})

	err := d.Send(context.Background(), notification.Envelope{
		Template: notification.TemplateContactAdmin,
		To:       d.AdminEmail(),
		ReplyTo:  "jane@acme.io",
		Data:     ContactData{Name: "Jane", Email: "jane@acme.io", Subject: "Pricing", Message: "hello there"},
	})
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	sent := s.Sent()
	if len(sent) != 1 {
		t.Fatalf("sent %d, want 1", len(sent))
	}
	m := sent[0]
	if m.From != "noreply@x.io" || m.To != "admin@x.io" || m.ReplyTo != "jane@acme.io" {
		t.Fatalf("unexpected addressing: %+v", m)
	}
	if m.Subject != "Contact Form: Pricing" {
		t.Fatalf("subject = %q", m.Subject)
	}
}

func TestDispatcher_SendPropagatesError(t *testing.T) {
	boom := errors.New("smtp down")
	d := NewDispatcher(&sendermock.Sender{Err: boom}, nil, Config{Site: site})
	err := d.Send(context.Background(), notification.Envelope{Template: notification.TemplateNewsletterWelcome, To: "a@b.c", Data: SubscriberData{Email: "a@b.c"}})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
}

func TestDispatcher_DispatchLogsFailure(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	s := &sendermock.Sender{Err: errors.New("down")}
	d := NewDispatcher(s, zap.New(core), Config{Site: site})

	for i := 0; i < 3; i++ {
		d.Dispatch(notification.Envelope{Template: notification.TemplateStatusReview, To: "x@y.z", Data: StatusData{}})
	}
	d.Wait()

	if s.Count() != 3 {
		t.Fatalf("sent %d, want 3", s.Count())
	}
	if n := logs.FilterMessage("notification failed").Len(); n != 3 {
		t.Fatalf("logged %d failures, want 3", n)
	}
}
