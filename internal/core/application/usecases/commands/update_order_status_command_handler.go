package commands

import (
	"context"
	"time"

	"shiptrack/internal/core/domain/model/order"
	"shiptrack/internal/core/ports"

	"go.uber.org/zap"
)

// UpdateOrderStatusCommandHandler applies a status transition approved by the
// configured TransitionPolicy and appends the matching event at the end of
// the timeline. The buyer, when known, is notified after the save; a failed
// notification never fails the update.
type UpdateOrderStatusCommandHandler struct {
	writer *OrderWriter
	policy order.TransitionPolicy
	buyers buyerNotifier
	logger *zap.Logger
}

func NewUpdateOrderStatusCommandHandler(
	writer *OrderWriter,
	policy order.TransitionPolicy,
	users ports.UserResolver,
	notifier ports.Notifier,
	logger *zap.Logger,
) UpdateOrderStatusCommandHandler {
	logger = logger.With(zap.String("component", "update-order-status"))
	return UpdateOrderStatusCommandHandler{
		writer: writer,
		policy: policy,
		buyers: buyerNotifier{
			users:    users,
			notifier: notifier,
			bound:    writer.bound,
			logger:   logger,
		},
		logger: logger,
	}
}

// Handle returns errs.ObjectNotFoundError when the order does not exist and a
// validation error when the policy rejects the transition.
func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var from order.Status
	updated, err := h.writer.Mutate(ctx, cmd.OrderID(), func(o *order.Order, now time.Time) error {
		from = o.Status()
		return o.ChangeStatus(h.policy, cmd.Status(), cmd.Description(), cmd.Location(), cmd.UpdatedBy(), now)
	})
	if err != nil {
		return nil, err
	}

	h.logger.Info("order status changed",
		zap.String("order_number", updated.OrderNumber()),
		zap.Stringer("from", from),
		zap.Stringer("to", updated.Status()),
		zap.String("updated_by", cmd.UpdatedBy()),
	)

	h.buyers.notify(ctx, ports.StatusUpdate, updated, map[string]string{
		"location":    cmd.Location(),
		"description": cmd.Description(),
	}, updated.UpdatedAt())

	return updated, nil
}
