package services

import (
	"fmt"
	"math"

	"shiptrack/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	DefaultBaseRate  = decimal.NewFromInt(10)
	DefaultPerKgRate = decimal.NewFromInt(5)
)

// ShippingCostCalculator prices a shipment using a flat linear formula:
//
//	cost = baseRate + weightKg * perKgRate
//
// Courier specific rating is not modelled. Both rates are injectable so that
// tests and configuration can change them.
//
// Example usage:
//
//	calc := services.NewDefaultShippingCostCalculator()
//	cost, err := calc.Compute(2.0) // 20
//	if errors.Is(err, errs.ErrInvalidInput) {
//	    // weight was not positive
//	}
type ShippingCostCalculator struct {
	baseRate  decimal.Decimal
	perKgRate decimal.Decimal
}

// NewShippingCostCalculator creates a calculator with explicit rates.
//
// Parameters:
//   - baseRate: flat amount charged per shipment, must be >= 0
//   - perKgRate: amount charged per kilogram, must be >= 0
//
// Returns:
//   - ShippingCostCalculator: ready to use
//   - error: ValueIsOutOfRangeError when a rate is negative
func NewShippingCostCalculator(baseRate, perKgRate decimal.Decimal) (ShippingCostCalculator, error) {
	if baseRate.IsNegative() {
		return ShippingCostCalculator{}, errs.NewValueIsOutOfRangeError("base rate", baseRate, decimal.Zero, "unbounded")
	}
	if perKgRate.IsNegative() {
		return ShippingCostCalculator{}, errs.NewValueIsOutOfRangeError("per kg rate", perKgRate, decimal.Zero, "unbounded")
	}
	return ShippingCostCalculator{baseRate: baseRate, perKgRate: perKgRate}, nil
}

// NewDefaultShippingCostCalculator uses a base rate of 10 and 5 per kg.
func NewDefaultShippingCostCalculator() ShippingCostCalculator {
	return ShippingCostCalculator{baseRate: DefaultBaseRate, perKgRate: DefaultPerKgRate}
}

func (c ShippingCostCalculator) BaseRate() decimal.Decimal  { return c.baseRate }
func (c ShippingCostCalculator) PerKgRate() decimal.Decimal { return c.perKgRate }

// Compute returns the shipping cost for weightKg.
//
// Returns:
//   - decimal.Decimal: baseRate + weightKg * perKgRate
//   - error: InvalidInputError if weightKg is not a finite value > 0
func (c ShippingCostCalculator) Compute(weightKg float64) (decimal.Decimal, error) {
	if !(weightKg > 0) || math.IsInf(weightKg, 0) {
		return decimal.Zero, errs.NewInvalidInputErrorWithCause(
			"weightKg", weightKg, fmt.Errorf("weight must be greater than 0"))
	}
	return c.baseRate.Add(decimal.NewFromFloat(weightKg).Mul(c.perKgRate)), nil
}
