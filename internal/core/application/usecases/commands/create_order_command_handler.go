package commands

import (
	"context"
	"errors"
	"time"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/order"
	"shiptrack/internal/core/ports"
	"shiptrack/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// maxCreateAttempts bounds how often identifiers are redrawn after the store
// rejects a duplicate order or tracking number.
const maxCreateAttempts = 3

// ShippingCostCalculator prices a shipment by weight.
type ShippingCostCalculator interface {
	Compute(weightKg float64) (decimal.Decimal, error)
}

// CreateOrderCommandHandler creates PENDING orders with freshly generated
// identifiers, fixed pricing and a single creation event.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(writer, users, ids, calculator, 72*time.Hour, notifier, logger)
//	o, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	fmt.Println(o.OrderNumber(), o.TrackingNumber())
type CreateOrderCommandHandler struct {
	writer     *OrderWriter
	users      ports.UserResolver
	ids        IdentifierGenerator
	calculator ShippingCostCalculator
	leadTime   time.Duration
	notifier   ports.Notifier
	logger     *zap.Logger
}

// NewCreateOrderCommandHandler creates a handler for order creation.
// leadTime is added to the creation time to estimate delivery.
func NewCreateOrderCommandHandler(
	writer *OrderWriter,
	users ports.UserResolver,
	ids IdentifierGenerator,
	calculator ShippingCostCalculator,
	leadTime time.Duration,
	notifier ports.Notifier,
	logger *zap.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		writer:     writer,
		users:      users,
		ids:        ids,
		calculator: calculator,
		leadTime:   leadTime,
		notifier:   notifier,
		logger:     logger.With(zap.String("component", "create-order")),
	}
}

// Handle validates the request, resolves the buyer, prices the shipment and
// persists the order. A confirmation is sent when a buyer was resolved. The
// returned order carries its store-assigned id.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	input := cmd.Product()
	product, err := order.NewProduct(input.Name, input.Category, input.WeightKg, input.Dimensions, input.Value)
	if err != nil {
		return nil, err
	}

	cost, err := h.calculator.Compute(product.WeightKg())
	if err != nil {
		return nil, err
	}

	pricing, err := order.NewPricing(product.Value(), cost)
	if err != nil {
		return nil, err
	}

	buyerID, err := h.resolveBuyer(ctx, cmd.BuyerEmail())
	if err != nil {
		return nil, err
	}

	var created *order.Order
	for attempt := 1; ; attempt++ {
		created, err = h.build(cmd, buyerID, product, pricing)
		if err != nil {
			return nil, err
		}

		err = h.writer.Insert(ctx, created)
		if err == nil {
			break
		}
		if !errors.Is(err, errs.ErrObjectAlreadyExists) || attempt == maxCreateAttempts {
			return nil, err
		}

		h.logger.Warn("identifier collision, regenerating",
			zap.Int("attempt", attempt),
			zap.String("order_number", created.OrderNumber()),
			zap.String("tracking_number", created.TrackingNumber()),
			zap.Error(err),
		)
	}

	h.logger.Info("order created",
		zap.Stringer("order_id", created.ID()),
		zap.String("order_number", created.OrderNumber()),
		zap.String("tracking_number", created.TrackingNumber()),
		zap.Bool("buyer_resolved", buyerID != nil),
	)

	if buyerID != nil {
		h.notifier.Notify(ctx, newNotification(ports.OrderConfirmation, cmd.BuyerEmail(), created, created.CreatedAt()))
	}

	return created, nil
}

func (h CreateOrderCommandHandler) build(
	cmd CreateOrderCommand,
	buyerID *kernel.UUID,
	product order.Product,
	pricing order.Pricing,
) (*order.Order, error) {
	now := h.writer.Now()

	shipping, err := order.NewShipping(
		cmd.From(),
		cmd.To(),
		cmd.CourierService(),
		h.ids.NewTrackingNumber(),
		now.Add(h.leadTime),
	)
	if err != nil {
		return nil, err
	}

	return order.NewOrder(h.ids.NewOrderNumber(), cmd.SellerID(), buyerID, product, shipping, pricing, now)
}

// resolveBuyer returns nil without error when there is no email or no user
// behind it.
func (h CreateOrderCommandHandler) resolveBuyer(ctx context.Context, email string) (*kernel.UUID, error) {
	if email == "" {
		return nil, nil
	}

	ctx, cancel := h.writer.bound(ctx)
	defer cancel()

	id, found, err := h.users.FindUserIDByEmail(ctx, email)
	if err != nil {
		return nil, errs.AsUnavailable(userDirectory, err)
	}
	if !found {
		h.logger.Debug("buyer email not registered", zap.String("email", email))
		return nil, nil
	}
	return &id, nil
}
