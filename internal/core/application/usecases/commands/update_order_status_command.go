package commands

import (
	"errors"
	"strings"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/order"
	"shiptrack/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand moves an order to a new status. An empty
// description falls back to the status description.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	status      order.Status
	location    string
	description string
	updatedBy   string

	guard guard.ConstructorGuard
}

func NewUpdateOrderStatusCommand(
	orderID kernel.UUID,
	status order.Status,
	location, description, updatedBy string,
) (UpdateOrderStatusCommand, error) {
	c := UpdateOrderStatusCommand{
		location:  strings.TrimSpace(location),
		updatedBy: strings.TrimSpace(updatedBy),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setOrderID(orderID),
		c.setStatus(status),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	c.description = strings.TrimSpace(description)
	if c.description == "" {
		c.description = status.Description()
	}

	return c, nil
}

func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

func (c UpdateOrderStatusCommand) OrderID() kernel.UUID { return c.orderID }
func (c UpdateOrderStatusCommand) Status() order.Status { return c.status }
func (c UpdateOrderStatusCommand) Location() string     { return c.location }
func (c UpdateOrderStatusCommand) Description() string  { return c.description }
func (c UpdateOrderStatusCommand) UpdatedBy() string    { return c.updatedBy }

func (c *UpdateOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *UpdateOrderStatusCommand) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}
