package http_test

import (
	"context"
	"testing"
	"time"

	"shiptrack/internal/core/application/usecases/commands"
	"shiptrack/internal/core/application/usecases/queries"
	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCreateOrderHandler struct{ mock.Mock }

func (m *MockCreateOrderHandler) Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockUpdateOrderStatusHandler struct{ mock.Mock }

func (m *MockUpdateOrderStatusHandler) Handle(
	ctx context.Context, cmd commands.UpdateOrderStatusCommand,
) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockFlagOrderHandler struct{ mock.Mock }

func (m *MockFlagOrderHandler) Handle(ctx context.Context, cmd commands.FlagOrderCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockAddTrackingEventHandler struct{ mock.Mock }

func (m *MockAddTrackingEventHandler) Handle(ctx context.Context, cmd commands.AddTrackingEventCommand) (bool, error) {
	args := m.Called(ctx, cmd)
	return args.Bool(0), args.Error(1)
}

type MockAssignCourierHandler struct{ mock.Mock }

func (m *MockAssignCourierHandler) Handle(ctx context.Context, cmd commands.AssignCourierCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockGetOrderHandler struct{ mock.Mock }

func (m *MockGetOrderHandler) Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderView, error) {
	args := m.Called(ctx, query)
	v, _ := args.Get(0).(queries.OrderView)
	return v, args.Error(1)
}

type MockGetOrdersForUserHandler struct{ mock.Mock }

func (m *MockGetOrdersForUserHandler) Handle(
	ctx context.Context, query queries.GetOrdersForUserQuery,
) ([]queries.OrderView, error) {
	args := m.Called(ctx, query)
	v, _ := args.Get(0).([]queries.OrderView)
	return v, args.Error(1)
}

type MockGetTrackingViewHandler struct{ mock.Mock }

func (m *MockGetTrackingViewHandler) Handle(
	ctx context.Context, query queries.GetOrderByTrackingNumberQuery,
) (queries.TrackingView, bool, error) {
	args := m.Called(ctx, query)
	v, _ := args.Get(0).(queries.TrackingView)
	return v, args.Bool(1), args.Error(2)
}

type MockGetOrderTimelineHandler struct{ mock.Mock }

func (m *MockGetOrderTimelineHandler) Handle(
	ctx context.Context, query queries.GetOrderQuery,
) ([]queries.TrackingEventView, error) {
	args := m.Called(ctx, query)
	v, _ := args.Get(0).([]queries.TrackingEventView)
	return v, args.Error(1)
}

type MockQuoteHandler struct{ mock.Mock }

func (m *MockQuoteHandler) Handle(ctx context.Context, query queries.QuoteQuery) (queries.QuoteView, error) {
	args := m.Called(ctx, query)
	v, _ := args.Get(0).(queries.QuoteView)
	return v, args.Error(1)
}

var createdAt = time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

func newOrder(t *testing.T, sellerID kernel.UUID) *order.Order {
	t.Helper()

	from, err := kernel.NewAddress("1 Seller Way", "Austin", "TX", "73301", "US")
	require.NoError(t, err)
	to, err := kernel.NewAddress("9 Buyer Road", "Denver", "CO", "80014", "US")
	require.NoError(t, err)

	product, err := order.NewProduct("Desk lamp", "Home", 2.5, nil, decimal.NewFromInt(50))
	require.NoError(t, err)
	shipping, err := order.NewShipping(from, to, "Standard", "TRK-AB12CD34", createdAt.Add(72*time.Hour))
	require.NoError(t, err)
	pricing, err := order.NewPricing(decimal.NewFromInt(50), decimal.RequireFromString("22.5"))
	require.NoError(t, err)

	o, err := order.NewOrder("ORD-AB12CD34", sellerID, nil, product, shipping, pricing, createdAt)
	require.NoError(t, err)
	require.NoError(t, o.AssignID(kernel.NewUUID()))
	o.AdvanceVersion()
	return o
}
