package queries

import (
	"errors"
	"time"

	"shiptrack/internal/pkg/errs"
	"shiptrack/internal/pkg/guard"
)

var ErrGetOverdueOrdersQueryIsNotConstructed = errors.New(
	"GetOverdueOrdersQuery must be created via NewGetOverdueOrdersQuery constructor",
)

// GetOverdueOrdersQuery selects non-terminal orders whose estimated delivery
// lies before asOf.
type GetOverdueOrdersQuery struct {
	asOf time.Time

	guard guard.ConstructorGuard
}

func NewGetOverdueOrdersQuery(asOf time.Time) (GetOverdueOrdersQuery, error) {
	if asOf.IsZero() {
		return GetOverdueOrdersQuery{}, errs.NewValueIsRequiredError("as of")
	}
	return GetOverdueOrdersQuery{asOf: asOf.UTC(), guard: guard.NewConstructorGuard()}, nil
}

func (q GetOverdueOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOverdueOrdersQueryIsNotConstructed)
}

func (q GetOverdueOrdersQuery) AsOf() time.Time {
	return q.asOf
}
