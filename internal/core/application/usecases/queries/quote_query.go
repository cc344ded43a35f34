package queries

import (
	"errors"

	"shiptrack/internal/pkg/errs"
	"shiptrack/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrQuoteQueryIsNotConstructed = errors.New("QuoteQuery must be created via NewQuoteQuery constructor")

// QuoteQuery prices a shipment without creating an order.
type QuoteQuery struct {
	weightKg     float64
	productValue decimal.Decimal

	guard guard.ConstructorGuard
}

// NewQuoteQuery only checks the product value; the weight is validated by the
// calculator so that quotes and orders reject the same inputs.
func NewQuoteQuery(weightKg float64, productValue decimal.Decimal) (QuoteQuery, error) {
	if !productValue.IsPositive() {
		return QuoteQuery{}, errs.NewValueIsOutOfRangeError("product value", productValue.String(), "> 0", "")
	}
	return QuoteQuery{
		weightKg:     weightKg,
		productValue: productValue,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (q QuoteQuery) Validate() error {
	return q.guard.Validate(ErrQuoteQueryIsNotConstructed)
}

func (q QuoteQuery) WeightKg() float64             { return q.weightKg }
func (q QuoteQuery) ProductValue() decimal.Decimal { return q.productValue }
