// Package kafka publishes order notifications to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"strings"

	"shiptrack/internal/core/ports"

	"github.com/go-faster/errors"
	"github.com/segmentio/kafka-go"
)

// MessageWriter is the subset of *kafka.Writer the publisher uses.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher implements ports.NotificationPublisher. Messages are keyed by
// order number so that all notifications of one order land on one partition
// in order.
type Publisher struct {
	writer MessageWriter
}

// ParseBrokers splits a comma separated broker list, skipping blanks.
func ParseBrokers(csv string) []string {
	brokers := make([]string, 0)
	for _, b := range strings.Split(csv, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

// NewPublisher creates a hash-balanced writer for topic.
func NewPublisher(brokers []string, topic string) *Publisher {
	return NewPublisherWithWriter(&kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	})
}

func NewPublisherWithWriter(writer MessageWriter) *Publisher {
	return &Publisher{writer: writer}
}

func (p *Publisher) Publish(ctx context.Context, n ports.Notification) error {
	msg := NewMessage(n)
	data, err := json.Marshal(msg)
	if err != nil {
		return errors.Wrap(err, "marshal notification")
	}

	if err := p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(msg.OrderNumber),
		Value: data,
		Time:  msg.OccurredAt,
		Headers: []kafka.Header{
			{Key: "kind", Value: []byte(msg.Kind)},
		},
	}); err != nil {
		return errors.Wrap(err, "write notification")
	}
	return nil
}

// Close flushes pending writes.
func (p *Publisher) Close() error {
	return p.writer.Close()
}
