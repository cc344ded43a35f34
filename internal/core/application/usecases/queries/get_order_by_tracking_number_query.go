package queries

import (
	"errors"
	"strings"

	"shiptrack/internal/pkg/errs"
	"shiptrack/internal/pkg/guard"
)

var ErrGetOrderByTrackingNumberQueryIsNotConstructed = errors.New(
	"GetOrderByTrackingNumberQuery must be created via NewGetOrderByTrackingNumberQuery constructor",
)

// GetOrderByTrackingNumberQuery looks an order up by its public tracking
// number. Input is upper-cased; any non-empty value is accepted so that
// unknown numbers yield "not found" rather than a validation error.
type GetOrderByTrackingNumberQuery struct {
	trackingNumber string

	guard guard.ConstructorGuard
}

func NewGetOrderByTrackingNumberQuery(trackingNumber string) (GetOrderByTrackingNumberQuery, error) {
	trackingNumber = strings.ToUpper(strings.TrimSpace(trackingNumber))
	if trackingNumber == "" {
		return GetOrderByTrackingNumberQuery{}, errs.NewValueIsRequiredError("tracking number")
	}
	return GetOrderByTrackingNumberQuery{trackingNumber: trackingNumber, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderByTrackingNumberQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderByTrackingNumberQueryIsNotConstructed)
}

func (q GetOrderByTrackingNumberQuery) TrackingNumber() string {
	return q.trackingNumber
}
