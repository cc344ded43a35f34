package queries

import (
	"context"
	"time"

	"shiptrack/internal/pkg/errs"
)

// GetOrderQueryHandler returns errs.ObjectNotFoundError when the order does
// not exist. Two calls without an intervening write return equal views.
type GetOrderQueryHandler struct {
	reader  OrderReader
	timeout time.Duration
}

func NewGetOrderQueryHandler(reader OrderReader, timeout time.Duration) GetOrderQueryHandler {
	return GetOrderQueryHandler{reader: reader, timeout: timeout}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	ctx, cancel := bounded(ctx, h.timeout)
	defer cancel()

	o, err := h.reader.Get(ctx, query.OrderID())
	if err != nil {
		return OrderView{}, errs.AsUnavailable(orderStore, err)
	}

	return NewOrderView(o), nil
}
