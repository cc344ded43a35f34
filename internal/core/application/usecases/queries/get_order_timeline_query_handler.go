package queries

import (
	"context"
	"time"

	"shiptrack/internal/pkg/errs"
)

// GetOrderTimelineQueryHandler returns only the timeline of an order, in
// stored order. It takes a GetOrderQuery.
type GetOrderTimelineQueryHandler struct {
	reader  OrderReader
	timeout time.Duration
}

func NewGetOrderTimelineQueryHandler(reader OrderReader, timeout time.Duration) GetOrderTimelineQueryHandler {
	return GetOrderTimelineQueryHandler{reader: reader, timeout: timeout}
}

func (h GetOrderTimelineQueryHandler) Handle(ctx context.Context, query GetOrderQuery) ([]TrackingEventView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := bounded(ctx, h.timeout)
	defer cancel()

	o, err := h.reader.Get(ctx, query.OrderID())
	if err != nil {
		return nil, errs.AsUnavailable(orderStore, err)
	}

	return NewTrackingEventViews(o.Timeline()), nil
}
