package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderIDAlreadyAssigned is returned when the store tries to assign an id twice.
	ErrOrderIDAlreadyAssigned = errors.New("order id is already assigned")
)

// Order represents a shipped good tracked from creation to delivery. It is the
// aggregate root: every mutation goes through its methods so the invariants
// below hold after each call.
//
// Order follows these invariants:
//   - orderNumber and the shipping tracking number are set at construction only
//   - id is empty until the store assigns it, and immutable afterwards
//   - the timeline is never empty
//   - pricing is never recomputed
//   - updatedAt >= createdAt and never moves backwards
//   - status changes are approved by a TransitionPolicy
type Order struct {
	// id is assigned by the store on first persistence
	id kernel.UUID

	// orderNumber is the human readable ORD-XXXXXXXX identifier
	orderNumber string

	sellerID kernel.UUID

	// buyerID is nil when the buyer email could not be resolved at creation
	buyerID *kernel.UUID

	// courierID is nil until a courier is assigned
	courierID *kernel.UUID

	product  Product
	shipping Shipping
	pricing  Pricing

	status   Status
	timeline Timeline

	createdAt time.Time
	updatedAt time.Time

	// version is the optimistic concurrency token maintained by the store
	version int64

	isConstructed bool
}

// NewOrder creates a PENDING order with a single creation event appended to
// its timeline. The id stays empty until the order is first persisted.
//
// Example:
//
//	o, err := order.NewOrder("ORD-7K2M9QX4", sellerID, &buyerID, product, shipping, pricing, time.Now())
//	if err != nil {
//	    // validation error, nothing was created
//	}
func NewOrder(
	orderNumber string,
	sellerID kernel.UUID,
	buyerID *kernel.UUID,
	product Product,
	shipping Shipping,
	pricing Pricing,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setOrderNumber(orderNumber),
		o.setSeller(sellerID),
		o.setBuyer(buyerID),
		o.setProduct(product),
		o.setShipping(shipping),
		o.setPricing(pricing),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	if !pricing.ProductValue().Equal(product.Value()) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"pricing",
			fmt.Errorf("product value %s differs from declared value %s", pricing.ProductValue(), product.Value()),
		)
	}

	creation, err := NewTrackingEvent(Pending.String(), Pending.Description(), creationLocation, "", createdAt)
	if err != nil {
		return nil, err
	}
	o.timeline = NewTimeline(creation)
	o.updatedAt = createdAt

	return o, nil
}

// RestoreOrder rebuilds a persisted order. It validates the stored state but
// does not append any event.
func RestoreOrder(
	id kernel.UUID,
	orderNumber string,
	sellerID kernel.UUID,
	buyerID, courierID *kernel.UUID,
	product Product,
	shipping Shipping,
	pricing Pricing,
	status Status,
	timeline Timeline,
	createdAt, updatedAt time.Time,
	version int64,
) (*Order, error) {
	o := &Order{
		id:            id,
		version:       version,
		isConstructed: true,
	}

	var errCourier, errStatus, errTimeline, errUpdated error
	if courierID != nil {
		if err := courierID.Validate(); err != nil {
			errCourier = err
		} else {
			c := *courierID
			o.courierID = &c
		}
	}
	if err := status.Validate(); err != nil {
		errStatus = err
	} else {
		o.status = status
	}
	if timeline.IsEmpty() {
		errTimeline = errs.NewValueIsRequiredError("timeline")
	} else if err := timeline.Validate(); err != nil {
		errTimeline = err
	} else {
		o.timeline = NewTimeline(timeline.Events()...)
	}
	if updatedAt.Before(createdAt) {
		errUpdated = errs.NewValueIsInvalidErrorWithCause(
			"updated at", fmt.Errorf("%s is before created at %s", updatedAt, createdAt))
	} else {
		o.updatedAt = updatedAt
	}

	if err := errors.Join(
		id.Validate(),
		o.setOrderNumber(orderNumber),
		o.setSeller(sellerID),
		o.setBuyer(buyerID),
		errCourier,
		o.setProduct(product),
		o.setShipping(shipping),
		o.setPricing(pricing),
		errStatus,
		errTimeline,
		o.setCreatedAt(createdAt),
		errUpdated,
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order was created by NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares orders by order number, which unlike id is set from construction.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.orderNumber == other.orderNumber
}

func (o *Order) ID() kernel.UUID        { return o.id }
func (o *Order) OrderNumber() string    { return o.orderNumber }
func (o *Order) SellerID() kernel.UUID  { return o.sellerID }
func (o *Order) Product() Product       { return o.product }
func (o *Order) Shipping() Shipping     { return o.shipping }
func (o *Order) Pricing() Pricing       { return o.pricing }
func (o *Order) Status() Status         { return o.status }
func (o *Order) CreatedAt() time.Time   { return o.createdAt }
func (o *Order) UpdatedAt() time.Time   { return o.updatedAt }
func (o *Order) Version() int64         { return o.version }
func (o *Order) TrackingNumber() string { return o.shipping.TrackingNumber() }

// BuyerID returns a copy of the buyer id, or nil when unresolved.
func (o *Order) BuyerID() *kernel.UUID {
	return copyID(o.buyerID)
}

// CourierID returns a copy of the courier id, or nil when unassigned.
func (o *Order) CourierID() *kernel.UUID {
	return copyID(o.courierID)
}

// Timeline returns a copy of the timeline.
func (o *Order) Timeline() Timeline {
	return NewTimeline(o.timeline.Events()...)
}

// IsPersisted reports whether the store has assigned an id.
func (o *Order) IsPersisted() bool {
	return !o.id.IsZero()
}

// AssignID is called by the store on first persistence.
func (o *Order) AssignID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if o.IsPersisted() {
		return ErrOrderIDAlreadyAssigned
	}
	o.id = id
	return nil
}

// AdvanceVersion is called by the store after a successful save.
func (o *Order) AdvanceVersion() {
	o.version++
}

// ChangeStatus moves the order to status and appends a matching event at the
// end of the timeline. Nothing changes when the policy rejects the transition.
//
// Example:
//
//	err := o.ChangeStatus(order.PermissivePolicy(), order.Delivered,
//	    "Delivered to recipient", "NYC", "courier42", time.Now())
func (o *Order) ChangeStatus(
	policy TransitionPolicy,
	status Status,
	description, location, updatedBy string,
	at time.Time,
) error {
	if err := policy.Check(o.status, status); err != nil {
		return err
	}

	event, err := NewTrackingEvent(status.String(), description, location, updatedBy, at)
	if err != nil {
		return err
	}

	o.status = status
	o.timeline.AppendEnd(event)
	o.touch(at)
	return nil
}

// Flag marks the order FLAGGED with the reason recorded in the event
// description. Pricing and every other field stay untouched.
func (o *Order) Flag(policy TransitionPolicy, reason, flaggedBy string, at time.Time) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return errs.NewValueIsRequiredError("flag reason")
	}
	return o.ChangeStatus(policy, Flagged, flagPrefix+reason, flagLocation, flaggedBy, at)
}

// AddSubEvent inserts an out-of-band event (such as a location ping) at the
// front of the timeline. Status is left alone.
func (o *Order) AddSubEvent(event TrackingEvent) error {
	if err := event.Validate(); err != nil {
		return err
	}
	o.timeline.InsertFront(event)
	o.touch(event.Timestamp())
	return nil
}

// AssignCourier records the courier responsible for the order and appends a
// COURIER_ASSIGNED event. Reassignment is allowed while the order is not terminal.
func (o *Order) AssignCourier(courierID kernel.UUID, assignedBy string, at time.Time) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	if o.status.IsTerminal() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("cannot assign a courier to a %s order", o.status))
	}

	event, err := NewTrackingEvent(
		EventCourierAssigned,
		"Courier assigned to the shipment",
		"",
		assignedBy,
		at,
	)
	if err != nil {
		return err
	}

	c := courierID
	o.courierID = &c
	o.timeline.AppendEnd(event)
	o.touch(at)
	return nil
}

// touch moves updatedAt forward only.
func (o *Order) touch(at time.Time) {
	if at.After(o.updatedAt) {
		o.updatedAt = at
	}
}

func (o *Order) setOrderNumber(orderNumber string) error {
	if err := ValidateOrderNumber(orderNumber); err != nil {
		return err
	}
	o.orderNumber = orderNumber
	return nil
}

func (o *Order) setSeller(sellerID kernel.UUID) error {
	if sellerID.IsZero() {
		return errs.NewValueIsRequiredError("seller id")
	}
	o.sellerID = sellerID
	return nil
}

func (o *Order) setBuyer(buyerID *kernel.UUID) error {
	if buyerID == nil {
		return nil
	}
	if err := buyerID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("buyer id", err)
	}
	o.buyerID = copyID(buyerID)
	return nil
}

func (o *Order) setProduct(product Product) error {
	if err := product.Validate(); err != nil {
		return err
	}
	o.product = product
	return nil
}

func (o *Order) setShipping(shipping Shipping) error {
	if err := shipping.Validate(); err != nil {
		return err
	}
	o.shipping = shipping
	return nil
}

func (o *Order) setPricing(pricing Pricing) error {
	if err := pricing.Validate(); err != nil {
		return err
	}
	o.pricing = pricing
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("created at")
	}
	o.createdAt = createdAt
	return nil
}

func copyID(id *kernel.UUID) *kernel.UUID {
	if id == nil {
		return nil
	}
	c := *id
	return &c
}
