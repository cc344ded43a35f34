package commands

import (
	"context"
	"time"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/order"
	"shiptrack/internal/core/ports"
	"shiptrack/internal/pkg/errs"
)

const (
	orderStore = "order store"
	orderLock  = "order lock"
)

// OrderWriter runs a single order mutation as one atomic unit:
//
//	lock(id) -> begin -> load -> mutate -> save -> commit -> unlock
//
// The lock makes the load-modify-save sequence single-writer per order id and
// the optimistic version checked on save catches writers that bypass it.
// Waiting for the lock and the store calls are each bounded by storeTimeout;
// a timeout or store failure is reported as errs.UnavailableError and nothing
// is saved.
type OrderWriter struct {
	uowFactory   OrderUoWFactory
	locker       ports.OrderLocker
	storeTimeout time.Duration
	now          func() time.Time
}

// NewOrderWriter wires the transaction factory and lock. A non-positive
// storeTimeout disables the bound.
func NewOrderWriter(uowFactory OrderUoWFactory, locker ports.OrderLocker, storeTimeout time.Duration) *OrderWriter {
	return &OrderWriter{
		uowFactory:   uowFactory,
		locker:       locker,
		storeTimeout: storeTimeout,
		now:          time.Now,
	}
}

// WithClock replaces the time source, for tests.
func (w *OrderWriter) WithClock(now func() time.Time) *OrderWriter {
	w.now = now
	return w
}

// Now returns the current time of the writer's clock in UTC.
func (w *OrderWriter) Now() time.Time {
	return w.now().UTC()
}

// Insert persists a freshly built order. No lock is needed because nobody
// else can know its id yet.
func (w *OrderWriter) Insert(ctx context.Context, aggregate *order.Order) error {
	ctx, cancel := w.bound(ctx)
	defer cancel()

	uow := w.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return errs.AsUnavailable(orderStore, err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return errs.AsUnavailable(orderStore, err)
	}

	if err := uow.Commit(ctx); err != nil {
		return errs.AsUnavailable(orderStore, err)
	}

	return nil
}

// Mutate loads the order under its lock, applies mutate and saves the result.
// When mutate fails nothing is saved and its error is returned unchanged.
func (w *OrderWriter) Mutate(
	ctx context.Context,
	orderID kernel.UUID,
	mutate func(o *order.Order, now time.Time) error,
) (*order.Order, error) {
	lockCtx, cancelLock := w.bound(ctx)
	unlock, err := w.locker.Lock(lockCtx, orderID)
	cancelLock()
	if err != nil {
		return nil, errs.AsUnavailable(orderLock, err)
	}
	defer unlock()

	ctx, cancel := w.bound(ctx)
	defer cancel()

	uow := w.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, errs.AsUnavailable(orderStore, err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	aggregate, err := repo.Get(ctx, orderID)
	if err != nil {
		return nil, errs.AsUnavailable(orderStore, err)
	}

	if err = mutate(aggregate, w.Now()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return nil, errs.AsUnavailable(orderStore, err)
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, errs.AsUnavailable(orderStore, err)
	}

	return aggregate, nil
}

func (w *OrderWriter) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	if w.storeTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, w.storeTimeout)
}
