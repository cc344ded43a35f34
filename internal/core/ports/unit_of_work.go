package ports

import (
	"context"
)

// UnitOfWorkFactory hands out one UnitOfWork per operation; instances are
// never shared between goroutines.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the transaction boundary of a single order write.
type UnitOfWork interface {
	Begin(ctx context.Context) error

	// Commit fails when no transaction is open.
	Commit(ctx context.Context) error

	// Rollback fails when no transaction is open, including after Commit.
	Rollback(ctx context.Context) error

	// OrderRepository runs inside the open transaction, or on the plain
	// connection before Begin.
	OrderRepository() OrderRepository
}
