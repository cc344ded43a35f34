package ports

import (
	"context"

	"shiptrack/internal/core/domain/model/kernel"
)

// UserResolver looks up actors in the user directory. A missing user is
// reported with found == false, never as an error.
type UserResolver interface {
	FindUserIDByEmail(ctx context.Context, email string) (id kernel.UUID, found bool, err error)
	FindEmailByUserID(ctx context.Context, id kernel.UUID) (email string, found bool, err error)
}
