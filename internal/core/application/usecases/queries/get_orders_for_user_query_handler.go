package queries

import (
	"context"
	"time"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/order"
	"shiptrack/internal/pkg/errs"
)

// GetOrdersForUserQueryHandler dispatches on role:
//   - SELLER: orders sold by the user, most recent first
//   - BUYER: orders bought by the user, most recent first
//   - COURIER: orders assigned to the user, in store order
//   - anything else: an empty list, not an error
type GetOrdersForUserQueryHandler struct {
	reader  OrderReader
	timeout time.Duration
}

func NewGetOrdersForUserQueryHandler(reader OrderReader, timeout time.Duration) GetOrdersForUserQueryHandler {
	return GetOrdersForUserQueryHandler{reader: reader, timeout: timeout}
}

func (h GetOrdersForUserQueryHandler) Handle(ctx context.Context, query GetOrdersForUserQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var find func(context.Context, kernel.UUID) ([]*order.Order, error)
	switch query.Role() {
	case kernel.RoleSeller:
		find = h.reader.FindBySellerID
	case kernel.RoleBuyer:
		find = h.reader.FindByBuyerID
	case kernel.RoleCourier:
		find = h.reader.FindByCourierID
	default:
		return []OrderView{}, nil
	}

	ctx, cancel := bounded(ctx, h.timeout)
	defer cancel()

	orders, err := find(ctx, query.UserID())
	if err != nil {
		return nil, errs.AsUnavailable(orderStore, err)
	}

	return newOrderViews(orders), nil
}
