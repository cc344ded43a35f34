package order

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/errs"
	"shiptrack/internal/pkg/guard"
)

var ErrShippingIsNotConstructed = errors.New("Shipping must be created via NewShipping constructor")

var (
	orderNumberPattern    = regexp.MustCompile(`^ORD-[A-Z0-9]{8}$`)
	trackingNumberPattern = regexp.MustCompile(`^TRK-[A-Z0-9]{8}$`)
)

// ValidateOrderNumber checks the ORD-XXXXXXXX format.
func ValidateOrderNumber(orderNumber string) error {
	if !orderNumberPattern.MatchString(orderNumber) {
		return errs.NewValueIsInvalidErrorWithCause("order number", fmt.Errorf("%q does not match ORD-XXXXXXXX", orderNumber))
	}
	return nil
}

// ValidateTrackingNumber checks the TRK-XXXXXXXX format.
func ValidateTrackingNumber(trackingNumber string) error {
	if !trackingNumberPattern.MatchString(trackingNumber) {
		return errs.NewValueIsInvalidErrorWithCause(
			"tracking number",
			fmt.Errorf("%q does not match TRK-XXXXXXXX", trackingNumber),
		)
	}
	return nil
}

// Shipping describes the route, the chosen courier service and the
// externally shared tracking number.
type Shipping struct {
	from              kernel.Address
	to                kernel.Address
	courierService    string
	trackingNumber    string
	estimatedDelivery time.Time

	guard guard.ConstructorGuard
}

func NewShipping(
	from, to kernel.Address,
	courierService, trackingNumber string,
	estimatedDelivery time.Time,
) (Shipping, error) {
	courierService = strings.TrimSpace(courierService)

	var errFrom, errTo, errService, errETA error
	if from.Validate() != nil {
		errFrom = errs.NewValueIsRequiredError("from address")
	}
	if to.Validate() != nil {
		errTo = errs.NewValueIsRequiredError("to address")
	}
	if courierService == "" {
		errService = errs.NewValueIsRequiredError("courier service")
	}
	if estimatedDelivery.IsZero() {
		errETA = errs.NewValueIsRequiredError("estimated delivery")
	}

	if err := errors.Join(errFrom, errTo, errService, ValidateTrackingNumber(trackingNumber), errETA); err != nil {
		return Shipping{}, err
	}

	return Shipping{
		from:              from,
		to:                to,
		courierService:    courierService,
		trackingNumber:    trackingNumber,
		estimatedDelivery: estimatedDelivery,
		guard:             guard.NewConstructorGuard(),
	}, nil
}

func (s Shipping) Validate() error {
	return s.guard.Validate(ErrShippingIsNotConstructed)
}

func (s Shipping) From() kernel.Address         { return s.from }
func (s Shipping) To() kernel.Address           { return s.to }
func (s Shipping) CourierService() string       { return s.courierService }
func (s Shipping) TrackingNumber() string       { return s.trackingNumber }
func (s Shipping) EstimatedDelivery() time.Time { return s.estimatedDelivery }
