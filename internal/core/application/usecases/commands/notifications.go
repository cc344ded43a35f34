package commands

import (
	"context"
	"time"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/order"
	"shiptrack/internal/core/ports"

	"go.uber.org/zap"
)

const userDirectory = "user directory"

func newNotification(kind ports.NotificationKind, email string, o *order.Order, at time.Time) ports.Notification {
	return ports.Notification{
		Kind:              kind,
		RecipientEmail:    email,
		OrderID:           o.ID(),
		OrderNumber:       o.OrderNumber(),
		TrackingNumber:    o.TrackingNumber(),
		ProductName:       o.Product().Name(),
		Status:            o.Status().String(),
		EstimatedDelivery: o.Shipping().EstimatedDelivery(),
		Total:             o.Pricing().Total(),
		Extra:             map[string]string{},
		OccurredAt:        at,
	}
}

// buyerNotifier sends status notifications to the buyer of an order after the
// change was committed. Every failure is logged and swallowed. The email
// lookup is bounded like any other store call.
type buyerNotifier struct {
	users    ports.UserResolver
	notifier ports.Notifier
	bound    func(context.Context) (context.Context, context.CancelFunc)
	logger   *zap.Logger
}

func (n buyerNotifier) notify(ctx context.Context, kind ports.NotificationKind, o *order.Order, extra map[string]string, at time.Time) {
	buyerID := o.BuyerID()
	if buyerID == nil {
		return
	}

	email, found, err := n.lookupEmail(ctx, *buyerID)
	if err != nil {
		n.logger.Warn("buyer email lookup failed, notification skipped",
			zap.String("order_number", o.OrderNumber()),
			zap.Stringer("buyer_id", buyerID),
			zap.Error(err),
		)
		return
	}
	if !found {
		n.logger.Debug("buyer has no email, notification skipped",
			zap.String("order_number", o.OrderNumber()))
		return
	}

	msg := newNotification(kind, email, o, at)
	for k, v := range extra {
		msg.Extra[k] = v
	}
	n.notifier.Notify(ctx, msg)
}

func (n buyerNotifier) lookupEmail(ctx context.Context, buyerID kernel.UUID) (string, bool, error) {
	if n.users == nil {
		return "", false, nil
	}
	if n.bound != nil {
		var cancel context.CancelFunc
		ctx, cancel = n.bound(ctx)
		defer cancel()
	}
	return n.users.FindEmailByUserID(ctx, buyerID)
}
