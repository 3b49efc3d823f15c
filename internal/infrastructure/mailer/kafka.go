package mailer

import (
	"context"
	"encoding/json"
	"fmt"

	"fintech-directory/internal/domain/notification"

	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaSender publishes rendered messages to a topic consumed by a mail relay.
// Messages are keyed by recipient so one inbox keeps its ordering.
type KafkaSender struct {
	w messageWriter
}

func NewKafkaSender(brokers []string, topic string) *KafkaSender {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
		RequiredAcks:           kafka.RequireAll,
		// one attempt per notification; a failed send is logged, never retried
		MaxAttempts: 1,
	}
	return &KafkaSender{w: w}
}

func (s *KafkaSender) Send(ctx context.Context, m notification.Message) error {
	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("kafka mail: marshal: %w", err)
	}
	msg := kafka.Message{
		Key:   []byte(m.To),
		Value: data,
		Headers: []kafka.Header{
			{Key: "template", Value: []byte(m.Template)},
		},
	}
	if err := s.w.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("kafka mail: %w", err)
	}
	return nil
}

func (s *KafkaSender) Close() error { return s.w.Close() }
