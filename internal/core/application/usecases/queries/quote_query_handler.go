package queries

import (
	"context"

	"github.com/shopspring/decimal"
)

// ShippingCostCalculator is the pricing calculator as seen by the quote.
type ShippingCostCalculator interface {
	Compute(weightKg float64) (decimal.Decimal, error)
	BaseRate() decimal.Decimal
	PerKgRate() decimal.Decimal
}

// QuoteView is the pricing breakdown a seller sees before creating an order.
// Money is rendered as decimal strings.
type QuoteView struct {
	WeightKg     float64 `json:"weightKg"`
	ProductValue string  `json:"productValue"`
	ShippingCost string  `json:"shippingCost"`
	Total        string  `json:"total"`
	BaseRate     string  `json:"baseRate"`
	PerKgRate    string  `json:"perKgRate"`
}

type QuoteQueryHandler struct {
	calculator ShippingCostCalculator
}

func NewQuoteQueryHandler(calculator ShippingCostCalculator) QuoteQueryHandler {
	return QuoteQueryHandler{calculator: calculator}
}

// Handle never touches the store; errors are validation errors only.
func (h QuoteQueryHandler) Handle(_ context.Context, query QuoteQuery) (QuoteView, error) {
	if err := query.Validate(); err != nil {
		return QuoteView{}, err
	}

	cost, err := h.calculator.Compute(query.WeightKg())
	if err != nil {
		return QuoteView{}, err
	}

	return QuoteView{
		WeightKg:     query.WeightKg(),
		ProductValue: query.ProductValue().StringFixed(2),
		ShippingCost: cost.StringFixed(2),
		Total:        query.ProductValue().Add(cost).StringFixed(2),
		BaseRate:     h.calculator.BaseRate().StringFixed(2),
		PerKgRate:    h.calculator.PerKgRate().StringFixed(2),
	}, nil
}
