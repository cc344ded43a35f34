package queries_test

import (
	"context"
	"testing"
	"time"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var createdAt = time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

type MockOrderReader struct{ mock.Mock }

func (m *MockOrderReader) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderReader) GetByTrackingNumber(ctx context.Context, trackingNumber string) (*order.Order, error) {
	args := m.Called(ctx, trackingNumber)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderReader) FindBySellerID(ctx context.Context, id kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, id)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

func (m *MockOrderReader) FindByBuyerID(ctx context.Context, id kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, id)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

func (m *MockOrderReader) FindByCourierID(ctx context.Context, id kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, id)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

func newAddress(t *testing.T, street, city string) kernel.Address {
	t.Helper()
	a, err := kernel.NewAddress(street, city, "", "", "US")
	require.NoError(t, err)
	return a
}

// newOrder builds a not yet stored order; suffix keeps identifiers unique.
func newOrder(t *testing.T, suffix string, sellerID kernel.UUID, buyerID *kernel.UUID) *order.Order {
	t.Helper()

	dims := &order.Dimensions{Length: 30, Width: 20, Height: 10}
	product, err := order.NewProduct("Desk lamp", "Home", 2.5, dims, decimal.NewFromInt(50))
	require.NoError(t, err)
	shipping, err := order.NewShipping(
		newAddress(t, "1 Seller Way", "Austin"),
		newAddress(t, "9 Buyer Road", "Denver"),
		"Standard", "TRK-"+suffix, createdAt.Add(72*time.Hour))
	require.NoError(t, err)
	pricing, err := order.NewPricing(decimal.NewFromInt(50), decimal.RequireFromString("22.5"))
	require.NoError(t, err)

	o, err := order.NewOrder("ORD-"+suffix, sellerID, buyerID, product, shipping, pricing, createdAt)
	require.NoError(t, err)
	return o
}

func newPersistedOrder(t *testing.T, suffix string, sellerID kernel.UUID, buyerID *kernel.UUID) *order.Order {
	t.Helper()

	o := newOrder(t, suffix, sellerID, buyerID)
	require.NoError(t, o.AssignID(kernel.NewUUID()))
	o.AdvanceVersion()
	return o
}
