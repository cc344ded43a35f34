package orderrepo

import (
	"context"
	"errors"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/order"
	"shiptrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
//
// The *gorm.DB must be opened with gorm.Config{TranslateError: true} so that
// unique index violations arrive as gorm.ErrDuplicatedKey.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository binds the repository to db, which is either a plain
// connection (queries) or the transaction of a unit of work.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add inserts a new order. The id and version 1 are assigned to the aggregate
// only once the row is written.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if aggregate.IsPersisted() {
		return order.ErrOrderIDAlreadyAssigned
	}

	id := kernel.NewUUID()
	dto := fromDomain(id.Bytes(), aggregate)
	dto.Version = aggregate.Version() + 1

	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause("order number or tracking number", err)
		}
		return err
	}

	if err := aggregate.AssignID(id); err != nil {
		return err
	}
	aggregate.AdvanceVersion()
	return nil
}

// Update writes every mutable column if the stored version still matches the
// aggregate's, and bumps the version on both sides.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if !aggregate.IsPersisted() {
		return errs.NewValueIsRequiredError("order id")
	}

	dto := fromDomain(aggregate.ID().Bytes(), aggregate)
	dto.Version = aggregate.Version() + 1

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Select("*").
		Omit("id", "order_number", "tracking_number", "seller_id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", dto.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("order", aggregate.ID().String())
		}
		return errs.NewVersionIsInvalidError("order", aggregate.Version())
	}

	aggregate.AdvanceVersion()
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByTrackingNumber retrieves an order by its tracking number. The match is
// exact; tracking numbers are stored upper-case.
func (r *GormOrderRepository) GetByTrackingNumber(ctx context.Context, trackingNumber string) (*order.Order, error) {
	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "tracking_number = ?", trackingNumber).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("tracking number", trackingNumber)
		}
		return nil, err
	}

	return toDomain(dto)
}

// FindBySellerID returns the seller's orders, most recent first.
func (r *GormOrderRepository) FindBySellerID(ctx context.Context, sellerID kernel.UUID) ([]*order.Order, error) {
	return r.find(ctx, "seller_id = ?", sellerID)
}

// FindByBuyerID returns the buyer's orders, most recent first.
func (r *GormOrderRepository) FindByBuyerID(ctx context.Context, buyerID kernel.UUID) ([]*order.Order, error) {
	return r.find(ctx, "buyer_id = ?", buyerID)
}

// FindByCourierID returns the courier's orders. Callers must not rely on the
// order, which happens to match the other finders.
func (r *GormOrderRepository) FindByCourierID(ctx context.Context, courierID kernel.UUID) ([]*order.Order, error) {
	return r.find(ctx, "courier_id = ?", courierID)
}

func (r *GormOrderRepository) find(ctx context.Context, condition string, id kernel.UUID) ([]*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).
		Where(condition, id.Bytes()).
		Order("created_at DESC").
		Order("order_number DESC").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// Identifiers returns every stored order number and tracking number, used to
// prime the identifier generator at startup.
func (r *GormOrderRepository) Identifiers(ctx context.Context) ([]string, error) {
	var rows []struct {
		OrderNumber    string
		TrackingNumber string
	}
	if err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Select("order_number", "tracking_number").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	identifiers := make([]string, 0, 2*len(rows))
	for _, row := range rows {
		identifiers = append(identifiers, row.OrderNumber, row.TrackingNumber)
	}
	return identifiers, nil
}
