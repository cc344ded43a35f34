package queries

import (
	"time"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/order"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// OrderView is the full read model of an order.
type OrderView struct {
	ID                string              `json:"id"`
	OrderNumber       string              `json:"orderNumber"`
	SellerID          string              `json:"sellerId"`
	BuyerID           *string             `json:"buyerId,omitempty"`
	CourierID         *string             `json:"courierId,omitempty"`
	Product           ProductView         `json:"product"`
	Shipping          ShippingView        `json:"shipping"`
	Pricing           PricingView         `json:"pricing"`
	Status            string              `json:"status"`
	StatusDescription string              `json:"statusDescription"`
	Timeline          []TrackingEventView `json:"timeline"`
	CreatedAt         time.Time           `json:"createdAt"`
	UpdatedAt         time.Time           `json:"updatedAt"`
}

type ProductView struct {
	Name       string          `json:"name"`
	Category   string          `json:"category"`
	WeightKg   float64         `json:"weightKg"`
	Dimensions *DimensionsView `json:"dimensions,omitempty"`
	Value      decimal.Decimal `json:"value"`
}

type DimensionsView struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type AddressView struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state,omitempty"`
	ZipCode string `json:"zipCode,omitempty"`
	Country string `json:"country,omitempty"`
}

type ShippingView struct {
	From              AddressView `json:"from"`
	To                AddressView `json:"to"`
	CourierService    string      `json:"courierService"`
	TrackingNumber    string      `json:"trackingNumber"`
	EstimatedDelivery time.Time   `json:"estimatedDelivery"`
}

type PricingView struct {
	ProductValue decimal.Decimal `json:"productValue"`
	ShippingCost decimal.Decimal `json:"shippingCost"`
	Total        decimal.Decimal `json:"total"`
}

type TrackingEventView struct {
	Status      string    `json:"status"`
	Description string    `json:"description,omitempty"`
	Location    string    `json:"location,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
	UpdatedBy   string    `json:"updatedBy,omitempty"`
}

// TrackingView is the public projection served by tracking number. It leaves
// out actor ids and addresses beyond the city. Timeline is in stored order, so
// sub-events may precede the creation event.
type TrackingView struct {
	OrderNumber       string              `json:"orderNumber"`
	TrackingNumber    string              `json:"trackingNumber"`
	Status            string              `json:"status"`
	StatusDescription string              `json:"statusDescription"`
	Product           TrackingProductView `json:"product"`
	Shipping          TrackingRouteView   `json:"shipping"`
	Pricing           PricingView         `json:"pricing"`
	Timeline          []TrackingEventView `json:"timeline"`
}

type TrackingProductView struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	WeightKg float64 `json:"weightKg"`
}

type TrackingRouteView struct {
	FromCity          string    `json:"fromCity"`
	ToCity            string    `json:"toCity"`
	CourierService    string    `json:"courierService"`
	EstimatedDelivery time.Time `json:"estimatedDelivery"`
}

// NewOrderView projects an order aggregate.
func NewOrderView(o *order.Order) OrderView {
	product := o.Product()
	shipping := o.Shipping()

	v := OrderView{
		ID:          o.ID().String(),
		OrderNumber: o.OrderNumber(),
		SellerID:    o.SellerID().String(),
		BuyerID:     idString(o.BuyerID()),
		CourierID:   idString(o.CourierID()),
		Product: ProductView{
			Name:     product.Name(),
			Category: product.Category(),
			WeightKg: product.WeightKg(),
			Value:    product.Value(),
		},
		Shipping: ShippingView{
			From:              newAddressView(shipping.From()),
			To:                newAddressView(shipping.To()),
			CourierService:    shipping.CourierService(),
			TrackingNumber:    shipping.TrackingNumber(),
			EstimatedDelivery: shipping.EstimatedDelivery(),
		},
		Pricing:           newPricingView(o.Pricing()),
		Status:            o.Status().String(),
		StatusDescription: o.Status().Description(),
		Timeline:          NewTrackingEventViews(o.Timeline()),
		CreatedAt:         o.CreatedAt(),
		UpdatedAt:         o.UpdatedAt(),
	}
	if d := product.Dimensions(); d != nil {
		v.Product.Dimensions = &DimensionsView{Length: d.Length, Width: d.Width, Height: d.Height}
	}
	return v
}

// NewTrackingView projects an order for public tracking.
func NewTrackingView(o *order.Order) TrackingView {
	product := o.Product()
	shipping := o.Shipping()

	return TrackingView{
		OrderNumber:       o.OrderNumber(),
		TrackingNumber:    shipping.TrackingNumber(),
		Status:            o.Status().String(),
		StatusDescription: o.Status().Description(),
		Product: TrackingProductView{
			Name:     product.Name(),
			Category: product.Category(),
			WeightKg: product.WeightKg(),
		},
		Shipping: TrackingRouteView{
			FromCity:          shipping.From().City(),
			ToCity:            shipping.To().City(),
			CourierService:    shipping.CourierService(),
			EstimatedDelivery: shipping.EstimatedDelivery(),
		},
		Pricing:  newPricingView(o.Pricing()),
		Timeline: NewTrackingEventViews(o.Timeline()),
	}
}

// NewTrackingEventViews keeps the stored event order.
func NewTrackingEventViews(tl order.Timeline) []TrackingEventView {
	return lo.Map(tl.Events(), func(e order.TrackingEvent, _ int) TrackingEventView {
		return TrackingEventView{
			Status:      e.Status(),
			Description: e.Description(),
			Location:    e.Location(),
			Timestamp:   e.Timestamp(),
			UpdatedBy:   e.UpdatedBy(),
		}
	})
}

func newOrderViews(orders []*order.Order) []OrderView {
	return lo.Map(orders, func(o *order.Order, _ int) OrderView {
		return NewOrderView(o)
	})
}

func newAddressView(a kernel.Address) AddressView {
	return AddressView{
		Street:  a.Street(),
		City:    a.City(),
		State:   a.State(),
		ZipCode: a.ZipCode(),
		Country: a.Country(),
	}
}

func newPricingView(p order.Pricing) PricingView {
	return PricingView{
		ProductValue: p.ProductValue(),
		ShippingCost: p.ShippingCost(),
		Total:        p.Total(),
	}
}

func idString(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}
	return lo.ToPtr(id.String())
}
