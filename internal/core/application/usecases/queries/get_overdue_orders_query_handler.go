package queries

import (
	"context"
	"time"

	"shiptrack/internal/core/domain/model/order"
	"shiptrack/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OverdueOrderView is one row of the overdue report.
type OverdueOrderView struct {
	ID                string    `json:"id"`
	OrderNumber       string    `json:"orderNumber"`
	TrackingNumber    string    `json:"trackingNumber"`
	Status            string    `json:"status"`
	EstimatedDelivery time.Time `json:"estimatedDelivery"`
}

// GetOverdueOrdersQueryHandler reads straight from the orders table. The
// report is read-only and does not need full aggregates.
//
// Example:
//
//	handler := NewGetOverdueOrdersQueryHandler(db, 3*time.Second)
//	query, _ := NewGetOverdueOrdersQuery(time.Now())
//
//	overdue, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d shipments are late\n", len(overdue))
type GetOverdueOrdersQueryHandler struct {
	db      *gorm.DB
	timeout time.Duration
}

func NewGetOverdueOrdersQueryHandler(db *gorm.DB, timeout time.Duration) GetOverdueOrdersQueryHandler {
	return GetOverdueOrdersQueryHandler{db: db, timeout: timeout}
}

// Handle returns overdue orders, earliest estimated delivery first.
func (h GetOverdueOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOverdueOrdersQuery,
) ([]OverdueOrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := bounded(ctx, h.timeout)
	defer cancel()

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_number,
			tracking_number,
			status,
			estimated_delivery
		FROM orders
		WHERE status NOT IN (?, ?)
		  AND estimated_delivery < ?
		ORDER BY estimated_delivery, order_number
	`, order.Delivered.String(), order.Cancelled.String(), query.AsOf()).Rows()
	if err != nil {
		return nil, errs.AsUnavailable(orderStore, err)
	}
	defer rows.Close()

	overdue := make([]OverdueOrderView, 0)
	for rows.Next() {
		var (
			view OverdueOrderView
			id   uuid.UUID
		)
		if err = rows.Scan(
			&id,
			&view.OrderNumber,
			&view.TrackingNumber,
			&view.Status,
			&view.EstimatedDelivery,
		); err != nil {
			return nil, errs.AsUnavailable(orderStore, err)
		}
		view.ID = id.String()
		view.EstimatedDelivery = view.EstimatedDelivery.UTC()
		overdue = append(overdue, view)
	}

	if err = rows.Err(); err != nil {
		return nil, errs.AsUnavailable(orderStore, err)
	}

	return overdue, nil
}
