package ports

import (
	"context"
	"time"

	"shiptrack/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// NotificationKind selects the message template.
type NotificationKind string

const (
	OrderConfirmation NotificationKind = "ORDER_CONFIRMATION"
	StatusUpdate      NotificationKind = "STATUS_UPDATE"
)

// Notification is a self-contained message about an order, built after the
// state change it describes was committed.
type Notification struct {
	Kind           NotificationKind
	RecipientEmail string

	OrderID           kernel.UUID
	OrderNumber       string
	TrackingNumber    string
	ProductName       string
	Status            string
	EstimatedDelivery time.Time
	Total             decimal.Decimal

	// Extra carries free-form details such as the event location.
	Extra map[string]string

	OccurredAt time.Time
}

// Notifier accepts notifications for asynchronous, best-effort delivery.
// Notify never blocks on delivery and never reports delivery failures.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

// NotificationPublisher delivers a single notification synchronously. It is
// the transport behind a Notifier.
type NotificationPublisher interface {
	Publish(ctx context.Context, n Notification) error
}
