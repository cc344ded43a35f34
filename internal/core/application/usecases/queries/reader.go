// Package queries contains read-only operations over orders. Queries never
// lock and never modify state; every store call is bounded by a timeout and a
// timeout is reported as errs.UnavailableError.
package queries

import (
	"context"
	"time"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/order"
)

const orderStore = "order store"

// OrderReader is the read half of ports.OrderRepository.
type OrderReader interface {
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
	GetByTrackingNumber(ctx context.Context, trackingNumber string) (*order.Order, error)
	FindBySellerID(ctx context.Context, sellerID kernel.UUID) ([]*order.Order, error)
	FindByBuyerID(ctx context.Context, buyerID kernel.UUID) ([]*order.Order, error)
	FindByCourierID(ctx context.Context, courierID kernel.UUID) ([]*order.Order, error)
}

func bounded(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
