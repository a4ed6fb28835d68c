// Package kafka publishes user notifications to the notification topic.
// Publishing is fire-and-forget from the caller's point of view: the business
// operation has already committed when Notify runs, so failures are reported
// back for logging but never undo anything.
package kafka

import (
	"context"
	"encoding/json"
	"time"

	"marketplace/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

// notificationMessage is the wire format of one published notification.
type notificationMessage struct {
	RecipientID string    `json:"recipient_id"`
	Subject     string    `json:"subject"`
	Body        string    `json:"body"`
	SentAt      time.Time `json:"sent_at"`
}

// NotificationProducer implements ports.Notifier on top of a kafka writer.
type NotificationProducer struct {
	writer *kafka.Writer
}

// NewNotificationProducer creates a producer for the given brokers and topic.
// Messages are keyed by recipient so one user's notifications stay ordered.
func NewNotificationProducer(brokers []string, topic string) *NotificationProducer {
	return &NotificationProducer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			BatchTimeout: 10 * time.Millisecond,
			BatchSize:    100,
		},
	}
}

// Notify publishes a single notification.
func (p *NotificationProducer) Notify(ctx context.Context, notification ports.Notification) error {
	if err := notification.RecipientID.Validate(); err != nil {
		return err
	}

	payload, err := json.Marshal(notificationMessage{
		RecipientID: notification.RecipientID.String(),
		Subject:     notification.Subject,
		Body:        notification.Body,
		SentAt:      time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(notification.RecipientID.String()),
		Value: payload,
	})
}

// Close flushes and closes the underlying writer.
func (p *NotificationProducer) Close() error {
	return p.writer.Close()
}
