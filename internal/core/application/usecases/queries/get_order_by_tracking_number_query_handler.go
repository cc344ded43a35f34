package queries

import (
	"context"
	"errors"
	"time"

	"shiptrack/internal/core/domain/model/order"
	"shiptrack/internal/pkg/errs"
)

// GetOrderByTrackingNumberQueryHandler reports a missing order with
// found == false instead of an error.
type GetOrderByTrackingNumberQueryHandler struct {
	reader  OrderReader
	timeout time.Duration
}

func NewGetOrderByTrackingNumberQueryHandler(reader OrderReader, timeout time.Duration) GetOrderByTrackingNumberQueryHandler {
	return GetOrderByTrackingNumberQueryHandler{reader: reader, timeout: timeout}
}

func (h GetOrderByTrackingNumberQueryHandler) Handle(
	ctx context.Context,
	query GetOrderByTrackingNumberQuery,
) (view OrderView, found bool, err error) {
	o, found, err := findByTrackingNumber(ctx, h.reader, h.timeout, query)
	if err != nil || !found {
		return OrderView{}, found, err
	}
	return NewOrderView(o), true, nil
}

func findByTrackingNumber(
	ctx context.Context,
	reader OrderReader,
	timeout time.Duration,
	query GetOrderByTrackingNumberQuery,
) (*order.Order, bool, error) {
	if err := query.Validate(); err != nil {
		return nil, false, err
	}

	ctx, cancel := bounded(ctx, timeout)
	defer cancel()

	o, err := reader.GetByTrackingNumber(ctx, query.TrackingNumber())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errs.AsUnavailable(orderStore, err)
	}
	return o, true, nil
}
