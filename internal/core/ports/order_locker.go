package ports

import (
	"context"

	"shiptrack/internal/core/domain/model/kernel"
)

// Unlock releases a lock obtained from OrderLocker. It is safe to call once.
type Unlock func()

// OrderLocker provides single-writer mutual exclusion per order id. Lock
// blocks until the lock is held or ctx is done; locks on different ids never
// wait for each other.
type OrderLocker interface {
	Lock(ctx context.Context, orderID kernel.UUID) (Unlock, error)
}
