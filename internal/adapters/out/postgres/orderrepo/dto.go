// Package orderrepo persists order aggregates with GORM. An order is one row
// of the orders table; its timeline is stored as an ordered JSONB array so
// that front insertions survive a round trip unchanged.
package orderrepo

import (
	"time"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// OrderDTO represents the database structure for persisting order aggregates.
// order_number and tracking_number carry unique indexes: a collision on insert
// surfaces as errs.ObjectAlreadyExistsError. Timestamps come from the domain,
// so GORM's automatic time tracking is off.
type OrderDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderNumber    string     `gorm:"size:16;not null;uniqueIndex"`
	TrackingNumber string     `gorm:"size:16;not null;uniqueIndex"`
	SellerID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	BuyerID        *uuid.UUID `gorm:"type:uuid;index"`
	CourierID      *uuid.UUID `gorm:"type:uuid;index"`

	Product ProductDTO `gorm:"embedded;embeddedPrefix:product_"`
	From    AddressDTO `gorm:"embedded;embeddedPrefix:from_"`
	To      AddressDTO `gorm:"embedded;embeddedPrefix:to_"`

	CourierService    string          `gorm:"not null"`
	EstimatedDelivery time.Time       `gorm:"not null;index"`
	ShippingCost      decimal.Decimal `gorm:"type:numeric;not null"`

	Status   string                                 `gorm:"size:32;not null;index"`
	Timeline datatypes.JSONType[[]TrackingEventDTO] `gorm:"not null"`

	CreatedAt time.Time `gorm:"not null;index;autoCreateTime:false"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime:false"`
	Version   int64     `gorm:"not null"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ProductDTO stores dimensions as three nullable columns; they are either all
// set or all NULL.
type ProductDTO struct {
	Name     string          `gorm:"not null"`
	Category string          `gorm:"not null"`
	WeightKg float64         `gorm:"not null"`
	Value    decimal.Decimal `gorm:"type:numeric;not null"`
	LengthCm *float64
	WidthCm  *float64
	HeightCm *float64
}

type AddressDTO struct {
	Street  string `gorm:"not null"`
	City    string `gorm:"not null"`
	State   string
	ZipCode string
	Country string
}

// TrackingEventDTO is one element of the timeline JSON array.
type TrackingEventDTO struct {
	Status      string    `json:"status"`
	Description string    `json:"description,omitempty"`
	Location    string    `json:"location,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
	UpdatedBy   string    `json:"updatedBy,omitempty"`
}

// fromDomain converts an order aggregate to its database representation. The
// id is passed separately because Add stores a freshly drawn one.
func fromDomain(id uuid.UUID, o *order.Order) OrderDTO {
	product := o.Product()
	shipping := o.Shipping()

	dto := OrderDTO{
		ID:             id,
		OrderNumber:    o.OrderNumber(),
		TrackingNumber: shipping.TrackingNumber(),
		SellerID:       o.SellerID().Bytes(),
		BuyerID:        rawID(o.BuyerID()),
		CourierID:      rawID(o.CourierID()),
		Product: ProductDTO{
			Name:     product.Name(),
			Category: product.Category(),
			WeightKg: product.WeightKg(),
			Value:    product.Value(),
		},
		From:              addressFromDomain(shipping.From()),
		To:                addressFromDomain(shipping.To()),
		CourierService:    shipping.CourierService(),
		EstimatedDelivery: shipping.EstimatedDelivery().UTC(),
		ShippingCost:      o.Pricing().ShippingCost(),
		Status:            o.Status().String(),
		Timeline:          datatypes.NewJSONType(timelineFromDomain(o.Timeline())),
		CreatedAt:         o.CreatedAt().UTC(),
		UpdatedAt:         o.UpdatedAt().UTC(),
		Version:           o.Version(),
	}

	if d := product.Dimensions(); d != nil {
		dto.Product.LengthCm = &d.Length
		dto.Product.WidthCm = &d.Width
		dto.Product.HeightCm = &d.Height
	}

	return dto
}

// toDomain rebuilds the aggregate with RestoreOrder; the timeline keeps its
// stored order.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	sellerID, err := kernel.UUIDFromBytes(dto.SellerID[:])
	if err != nil {
		return nil, err
	}
	buyerID, err := domainID(dto.BuyerID)
	if err != nil {
		return nil, err
	}
	courierID, err := domainID(dto.CourierID)
	if err != nil {
		return nil, err
	}

	var dims *order.Dimensions
	if dto.Product.LengthCm != nil && dto.Product.WidthCm != nil && dto.Product.HeightCm != nil {
		dims = &order.Dimensions{
			Length: *dto.Product.LengthCm,
			Width:  *dto.Product.WidthCm,
			Height: *dto.Product.HeightCm,
		}
	}
	product, err := order.NewProduct(dto.Product.Name, dto.Product.Category, dto.Product.WeightKg, dims, dto.Product.Value)
	if err != nil {
		return nil, err
	}

	from, err := addressToDomain(dto.From)
	if err != nil {
		return nil, err
	}
	to, err := addressToDomain(dto.To)
	if err != nil {
		return nil, err
	}
	shipping, err := order.NewShipping(from, to, dto.CourierService, dto.TrackingNumber, dto.EstimatedDelivery.UTC())
	if err != nil {
		return nil, err
	}

	pricing, err := order.NewPricing(dto.Product.Value, dto.ShippingCost)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	timeline, err := timelineToDomain(dto.Timeline.Data())
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		dto.OrderNumber,
		sellerID,
		buyerID,
		courierID,
		product,
		shipping,
		pricing,
		status,
		timeline,
		dto.CreatedAt.UTC(),
		dto.UpdatedAt.UTC(),
		dto.Version,
	)
}

func addressFromDomain(a kernel.Address) AddressDTO {
	return AddressDTO{
		Street:  a.Street(),
		City:    a.City(),
		State:   a.State(),
		ZipCode: a.ZipCode(),
		Country: a.Country(),
	}
}

func addressToDomain(dto AddressDTO) (kernel.Address, error) {
	return kernel.NewAddress(dto.Street, dto.City, dto.State, dto.ZipCode, dto.Country)
}

func timelineFromDomain(tl order.Timeline) []TrackingEventDTO {
	events := tl.Events()
	dtos := make([]TrackingEventDTO, 0, len(events))
	for _, e := range events {
		dtos = append(dtos, TrackingEventDTO{
			Status:      e.Status(),
			Description: e.Description(),
			Location:    e.Location(),
			Timestamp:   e.Timestamp().UTC(),
			UpdatedBy:   e.UpdatedBy(),
		})
	}
	return dtos
}

func timelineToDomain(dtos []TrackingEventDTO) (order.Timeline, error) {
	events := make([]order.TrackingEvent, 0, len(dtos))
	for _, dto := range dtos {
		e, err := order.NewTrackingEvent(dto.Status, dto.Description, dto.Location, dto.UpdatedBy, dto.Timestamp.UTC())
		if err != nil {
			return order.Timeline{}, err
		}
		events = append(events, e)
	}
	return order.NewTimeline(events...), nil
}

func rawID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func domainID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil //nolint:nilnil // absent optional id
	}
	id, err := kernel.UUIDFromBytes(raw[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}
