package mailer

import (
	"context"

	"fintech-directory/internal/domain/notification"

	"go.uber.org/zap"
)

// LogSender writes messages to the logger instead of delivering them. Used in development.
type LogSender struct {
	log *zap.Logger
}

func NewLogSender(log *zap.Logger) *LogSender {
	return &LogSender{log: log}
}

func (s *LogSender) Send(_ context.Context, m notification.Message) error {
	s.log.Info("email",
		zap.String("template", string(m.Template)),
		zap.String("from", m.From),
		zap.String("to", m.To),
		zap.String("reply_to", m.ReplyTo),
		zap.String("subject", m.Subject),
		zap.Int("html_bytes", len(m.HTML)))
	return nil
}
