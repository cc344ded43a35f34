package http

import (
	"shiptrack/internal/core/application/usecases/commands"
	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/order"
	"shiptrack/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

type AddressRequest struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

type DimensionsRequest struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	ProductName     string             `json:"productName"`
	ProductCategory string             `json:"productCategory"`
	Weight          float64            `json:"weight"`
	Dimensions      *DimensionsRequest `json:"dimensions,omitempty"`
	ProductValue    decimal.Decimal    `json:"productValue"`
	FromAddress     *AddressRequest    `json:"fromAddress"`
	ToAddress       *AddressRequest    `json:"toAddress"`
	CourierService  string             `json:"courierService"`
	BuyerEmail      string             `json:"buyerEmail"`
}

type UpdateStatusRequest struct {
	Status      string `json:"status"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

type TrackingEventRequest struct {
	Status      string `json:"status"`
	Description string `json:"description"`
	Location    string `json:"location"`
}

type LocationRequest struct {
	Location string `json:"location"`
}

type AssignCourierRequest struct {
	CourierID string `json:"courierId"`
}

// AppliedResponse reports whether a sub-event landed on an order.
type AppliedResponse struct {
	Applied bool `json:"applied"`
}

func (r CreateOrderRequest) toCommand(sellerID kernel.UUID) (commands.CreateOrderCommand, error) {
	from, err := r.FromAddress.toAddress("from address")
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}
	to, err := r.ToAddress.toAddress("to address")
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	product := commands.ProductInput{
		Name:     r.ProductName,
		Category: r.ProductCategory,
		WeightKg: r.Weight,
		Value:    r.ProductValue,
	}
	if r.Dimensions != nil {
		product.Dimensions = &order.Dimensions{
			Length: r.Dimensions.Length,
			Width:  r.Dimensions.Width,
			Height: r.Dimensions.Height,
		}
	}

	return commands.NewCreateOrderCommand(sellerID, product, from, to, r.CourierService, r.BuyerEmail)
}

func (r *AddressRequest) toAddress(name string) (kernel.Address, error) {
	if r == nil {
		return kernel.Address{}, errs.NewValueIsRequiredError(name)
	}
	a, err := kernel.NewAddress(r.Street, r.City, r.State, r.ZipCode, r.Country)
	if err != nil {
		return kernel.Address{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return a, nil
}
