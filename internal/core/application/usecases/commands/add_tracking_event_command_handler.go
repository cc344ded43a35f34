package commands

import (
	"context"
	"errors"
	"time"

	"shiptrack/internal/core/domain/model/order"
	"shiptrack/internal/pkg/errs"

	"go.uber.org/zap"
)

// AddTrackingEventCommandHandler inserts a sub-event at the front of an
// order's timeline.
//
// A missing order is not an error: Handle returns applied == false and does
// nothing, so late location pings for unknown orders are dropped quietly.
type AddTrackingEventCommandHandler struct {
	writer *OrderWriter
	logger *zap.Logger
}

func NewAddTrackingEventCommandHandler(writer *OrderWriter, logger *zap.Logger) AddTrackingEventCommandHandler {
	return AddTrackingEventCommandHandler{
		writer: writer,
		logger: logger.With(zap.String("component", "add-tracking-event")),
	}
}

func (h AddTrackingEventCommandHandler) Handle(ctx context.Context, cmd AddTrackingEventCommand) (applied bool, err error) {
	if err = cmd.Validate(); err != nil {
		return false, err
	}

	_, err = h.writer.Mutate(ctx, cmd.OrderID(), func(o *order.Order, now time.Time) error {
		event, err := order.NewTrackingEvent(cmd.Label(), cmd.Description(), cmd.Location(), cmd.UpdatedBy(), now)
		if err != nil {
			return err
		}
		return o.AddSubEvent(event)
	})
	if errors.Is(err, errs.ErrObjectNotFound) {
		h.logger.Debug("tracking event for unknown order ignored",
			zap.Stringer("order_id", cmd.OrderID()),
			zap.String("status", cmd.Label()),
		)
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}
