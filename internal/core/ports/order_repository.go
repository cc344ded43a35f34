// Package ports defines the contracts between the order lifecycle core and
// the infrastructure around it: the order store, the user directory, the
// notification channel and the per-order lock.
package ports

import (
	"context"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Implementations return errs.ObjectNotFoundError for missing orders and
// errs.ObjectAlreadyExistsError when an identifier is already taken.
type OrderRepository interface {
	// Add persists a new order. The store assigns the id and the first version.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update saves an existing order if its stored version still equals
	// aggregate.Version(), then advances the version. A stale version yields
	// errs.VersionIsInvalidError and nothing is written.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by id.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByTrackingNumber retrieves an order by its public tracking number.
	GetByTrackingNumber(ctx context.Context, trackingNumber string) (*order.Order, error)

	// FindBySellerID returns the seller's orders, most recent first.
	FindBySellerID(ctx context.Context, sellerID kernel.UUID) ([]*order.Order, error)

	// FindByBuyerID returns the buyer's orders, most recent first.
	FindByBuyerID(ctx context.Context, buyerID kernel.UUID) ([]*order.Order, error)

	// FindByCourierID returns the orders assigned to the courier in no particular order.
	FindByCourierID(ctx context.Context, courierID kernel.UUID) ([]*order.Order, error)
}
