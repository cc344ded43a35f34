// Package notifylog is the notification transport used when no broker is
// configured: every notification becomes a structured log line.
package notifylog

import (
	"context"

	"shiptrack/internal/core/ports"

	"go.uber.org/zap"
)

type Publisher struct {
	logger *zap.Logger
}

func NewPublisher(logger *zap.Logger) *Publisher {
	return &Publisher{logger: logger}
}

func (p *Publisher) Publish(_ context.Context, n ports.Notification) error {
	p.logger.Info("notification",
		zap.String("kind", string(n.Kind)),
		zap.String("to", n.RecipientEmail),
		zap.String("order_number", n.OrderNumber),
		zap.String("tracking_number", n.TrackingNumber),
		zap.String("status", n.Status),
		zap.Any("extra", n.Extra),
	)
	return nil
}
