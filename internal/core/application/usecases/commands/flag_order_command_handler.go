package commands

import (
	"context"
	"time"

	"shiptrack/internal/core/domain/model/order"

	"go.uber.org/zap"
)

// FlagOrderCommandHandler moves an order to FLAGGED with the reason recorded
// on the new event. Flagging sends no notification.
type FlagOrderCommandHandler struct {
	writer *OrderWriter
	policy order.TransitionPolicy
	logger *zap.Logger
}

func NewFlagOrderCommandHandler(writer *OrderWriter, policy order.TransitionPolicy, logger *zap.Logger) FlagOrderCommandHandler {
	return FlagOrderCommandHandler{
		writer: writer,
		policy: policy,
		logger: logger.With(zap.String("component", "flag-order")),
	}
}

func (h FlagOrderCommandHandler) Handle(ctx context.Context, cmd FlagOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	flagged, err := h.writer.Mutate(ctx, cmd.OrderID(), func(o *order.Order, now time.Time) error {
		return o.Flag(h.policy, cmd.Reason(), cmd.FlaggedBy(), now)
	})
	if err != nil {
		return nil, err
	}

	h.logger.Warn("order flagged",
		zap.String("order_number", flagged.OrderNumber()),
		zap.String("reason", cmd.Reason()),
		zap.String("flagged_by", cmd.FlaggedBy()),
	)

	return flagged, nil
}
