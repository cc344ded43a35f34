package order

import (
	"errors"
	"fmt"

	"shiptrack/internal/pkg/errs"
	"shiptrack/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrPricingIsNotConstructed = errors.New("Pricing must be created via NewPricing constructor")

// Pricing is fixed at creation. Total is derived, never stored independently,
// so it cannot drift from productValue + shippingCost.
type Pricing struct {
	productValue decimal.Decimal
	shippingCost decimal.Decimal

	guard guard.ConstructorGuard
}

// NewPricing requires a positive product value and a non-negative shipping cost.
func NewPricing(productValue, shippingCost decimal.Decimal) (Pricing, error) {
	var errValue, errCost error
	if !productValue.IsPositive() {
		errValue = errs.NewValueIsInvalidErrorWithCause(
			"product value", fmt.Errorf("%s is not greater than 0", productValue))
	}
	if shippingCost.IsNegative() {
		errCost = errs.NewValueIsInvalidErrorWithCause(
			"shipping cost", fmt.Errorf("%s is negative", shippingCost))
	}
	if err := errors.Join(errValue, errCost); err != nil {
		return Pricing{}, err
	}

	return Pricing{
		productValue: productValue,
		shippingCost: shippingCost,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (p Pricing) Validate() error {
	return p.guard.Validate(ErrPricingIsNotConstructed)
}

func (p Pricing) ProductValue() decimal.Decimal { return p.productValue }
func (p Pricing) ShippingCost() decimal.Decimal { return p.shippingCost }

func (p Pricing) Total() decimal.Decimal {
	return p.productValue.Add(p.shippingCost)
}
