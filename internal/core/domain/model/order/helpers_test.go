package order_test

import (
	"testing"
	"time"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

func newTestAddress(t *testing.T, street string) kernel.Address {
	t.Helper()
	a, err := kernel.NewAddress(street, "Springfield", "IL", "62701", "US")
	require.NoError(t, err)
	return a
}

func newTestProduct(t *testing.T, weight float64, value string) order.Product {
	t.Helper()
	p, err := order.NewProduct("Desk lamp", "Home", weight, &order.Dimensions{Length: 30, Width: 20, Height: 45},
		decimal.RequireFromString(value))
	require.NoError(t, err)
	return p
}

func newTestShipping(t *testing.T) order.Shipping {
	t.Helper()
	s, err := order.NewShipping(
		newTestAddress(t, "1 Seller Way"),
		newTestAddress(t, "9 Buyer Road"),
		"Standard",
		"TRK-AB12CD34",
		baseTime.Add(72*time.Hour),
	)
	require.NoError(t, err)
	return s
}

func newTestPricing(t *testing.T, value, shipping string) order.Pricing {
	t.Helper()
	p, err := order.NewPricing(decimal.RequireFromString(value), decimal.RequireFromString(shipping))
	require.NoError(t, err)
	return p
}

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()
	buyer := kernel.NewUUID()
	o, err := order.NewOrder(
		"ORD-ZX98YW76",
		kernel.NewUUID(),
		&buyer,
		newTestProduct(t, 2.0, "50"),
		newTestShipping(t),
		newTestPricing(t, "50", "20"),
		baseTime,
	)
	require.NoError(t, err)
	return o
}

func statusesOf(tl order.Timeline) []string {
	events := tl.Events()
	out := make([]string, len(events))
	for i, e := range events {
		out[i] = e.Status()
	}
	return out
}
