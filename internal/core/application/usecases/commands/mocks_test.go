package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"shiptrack/internal/core/application/usecases/commands"
	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/order"
	"shiptrack/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 5, 2, 10, 30, 0, 0, time.UTC)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) GetByTrackingNumber(ctx context.Context, trackingNumber string) (*order.Order, error) {
	args := m.Called(ctx, trackingNumber)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) FindBySellerID(ctx context.Context, id kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, id)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

func (m *MockOrderRepository) FindByBuyerID(ctx context.Context, id kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, id)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

func (m *MockOrderRepository) FindByCourierID(ctx context.Context, id kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, id)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockUserResolver struct{ mock.Mock }

func (m *MockUserResolver) FindUserIDByEmail(ctx context.Context, email string) (kernel.UUID, bool, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(kernel.UUID), args.Bool(1), args.Error(2)
}

func (m *MockUserResolver) FindEmailByUserID(ctx context.Context, id kernel.UUID) (string, bool, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Bool(1), args.Error(2)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) Notify(ctx context.Context, n ports.Notification) {
	m.Called(ctx, n)
}

// stubLocker grants every lock unless err is set and counts releases.
type stubLocker struct {
	mu       sync.Mutex
	err      error
	locked   []kernel.UUID
	released int
}

func (l *stubLocker) Lock(_ context.Context, id kernel.UUID) (ports.Unlock, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.err != nil {
		return nil, l.err
	}
	l.locked = append(l.locked, id)
	return func() {
		l.mu.Lock()
		l.released++
		l.mu.Unlock()
	}, nil
}

type sequenceIDs struct {
	mu     sync.Mutex
	orders []string
	tracks []string
}

func (s *sequenceIDs) NewOrderNumber() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := s.orders[0]
	s.orders = s.orders[1:]
	return n
}

func (s *sequenceIDs) NewTrackingNumber() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := s.tracks[0]
	s.tracks = s.tracks[1:]
	return n
}

func newAddress(t *testing.T, street string) kernel.Address {
	t.Helper()
	a, err := kernel.NewAddress(street, "Springfield", "IL", "62701", "US")
	require.NoError(t, err)
	return a
}

// newStoredOrder builds an order as the repository would return it.
func newStoredOrder(t *testing.T, buyerID *kernel.UUID) *order.Order {
	t.Helper()

	product, err := order.NewProduct("Desk lamp", "Home", 2, nil, decimal.NewFromInt(50))
	require.NoError(t, err)
	shipping, err := order.NewShipping(newAddress(t, "1 Seller Way"), newAddress(t, "9 Buyer Road"),
		"Standard", "TRK-AAAA1111", fixedNow.Add(72*time.Hour))
	require.NoError(t, err)
	pricing, err := order.NewPricing(decimal.NewFromInt(50), decimal.NewFromInt(20))
	require.NoError(t, err)

	created := fixedNow.Add(-time.Hour)
	o, err := order.NewOrder("ORD-AAAA1111", kernel.NewUUID(), buyerID, product, shipping, pricing, created)
	require.NoError(t, err)
	require.NoError(t, o.AssignID(kernel.NewUUID()))
	o.AdvanceVersion()
	return o
}

// expectMutation wires the factory, unit of work and repository for one
// successful load-modify-save cycle.
func expectMutation(stored *order.Order) (*MockOrderUoWFactory, *MockOrderUoW, *MockOrderRepository) {
	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)

	factory.On("Create").Return(uow).Once()
	mock.InOrder(
		uow.On("Begin", mock.Anything).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once(),
		repo.On("Update", mock.Anything, stored).Return(nil).Once(),
		uow.On("Commit", mock.Anything).Return(nil).Once(),
		uow.On("Rollback", mock.Anything).Return(nil).Once(),
	)
	return factory, uow, repo
}

func newWriter(factory commands.OrderUoWFactory, locker ports.OrderLocker) *commands.OrderWriter {
	return commands.NewOrderWriter(factory, locker, time.Second).WithClock(func() time.Time { return fixedNow })
}
