package commands

import (
	"context"
	"time"

	"shiptrack/internal/core/domain/model/order"

	"go.uber.org/zap"
)

// AssignCourierCommandHandler records the courier responsible for an order.
// Terminal orders cannot be assigned.
type AssignCourierCommandHandler struct {
	writer *OrderWriter
	logger *zap.Logger
}

func NewAssignCourierCommandHandler(writer *OrderWriter, logger *zap.Logger) AssignCourierCommandHandler {
	return AssignCourierCommandHandler{
		writer: writer,
		logger: logger.With(zap.String("component", "assign-courier")),
	}
}

func (h AssignCourierCommandHandler) Handle(ctx context.Context, cmd AssignCourierCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	assigned, err := h.writer.Mutate(ctx, cmd.OrderID(), func(o *order.Order, now time.Time) error {
		return o.AssignCourier(cmd.CourierID(), cmd.AssignedBy(), now)
	})
	if err != nil {
		return nil, err
	}

	h.logger.Info("courier assigned",
		zap.String("order_number", assigned.OrderNumber()),
		zap.Stringer("courier_id", cmd.CourierID()),
	)

	return assigned, nil
}
