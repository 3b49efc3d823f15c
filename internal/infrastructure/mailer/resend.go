package mailer

import (
	"context"
	"fmt"
	"time"

	"fintech-directory/internal/domain/notification"

	"github.com/go-resty/resty/v2"
)

type resendEmail struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
	ReplyTo string   `json:"reply_to,omitempty"`
}

type resendResult struct {
	ID string `json:"id"`
}

type resendError struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

// ResendSender delivers through the Resend HTTP API.
type ResendSender struct {
	client *resty.Client
}

func NewResendSender(baseURL, apiKey string, timeout time.Duration) *ResendSender {
	c := resty.New().
		SetBaseURL(baseURL).
		SetAuthToken(apiKey).
		SetHeader("Content-Type", "application/json").
		SetTimeout(timeout)
	return &ResendSender{client: c}
}

func (s *ResendSender) Send(ctx context.Context, m notification.Message) error {
	var (
		out    resendResult
		apiErr resendError
	)
	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(resendEmail{From: m.From, To: []string{m.To}, Subject: m.Subject, HTML: m.HTML, ReplyTo: m.ReplyTo}).
		SetResult(&out).
		SetError(&apiErr).
		Post("/emails")
	if err != nil {
		return fmt.Errorf("resend: %w", err)
	}
	if resp.IsError() {
		if apiErr.Message != "" {
			return fmt.Errorf("resend: %s: %s", resp.Status(), apiErr.Message)
		}
		return fmt.Errorf("resend: %s", resp.Status())
	}
	return nil
}
