package queries

import (
	"errors"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/guard"
)

var ErrGetOrdersForUserQueryIsNotConstructed = errors.New(
	"GetOrdersForUserQuery must be created via NewGetOrdersForUserQuery constructor",
)

// GetOrdersForUserQuery lists the orders a user takes part in. The role picks
// the relation: seller, buyer or courier.
type GetOrdersForUserQuery struct {
	userID kernel.UUID
	role   kernel.Role

	guard guard.ConstructorGuard
}

// NewGetOrdersForUserQuery accepts any role string; unknown roles are kept
// and produce an empty result.
func NewGetOrdersForUserQuery(userID kernel.UUID, role string) (GetOrdersForUserQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetOrdersForUserQuery{}, err
	}
	return GetOrdersForUserQuery{
		userID: userID,
		role:   kernel.ParseRole(role),
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrdersForUserQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersForUserQueryIsNotConstructed)
}

func (q GetOrdersForUserQuery) UserID() kernel.UUID { return q.userID }
func (q GetOrdersForUserQuery) Role() kernel.Role   { return q.role }
