package commands

import (
	"errors"
	"strings"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/errs"
	"shiptrack/internal/pkg/guard"
)

var ErrAssignCourierCommandIsNotConstructed = errors.New(
	"AssignCourierCommand must be created via NewAssignCourierCommand constructor",
)

// AssignCourierCommand hands an order to a courier.
type AssignCourierCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	courierID  kernel.UUID
	assignedBy string

	guard guard.ConstructorGuard
}

func NewAssignCourierCommand(orderID, courierID kernel.UUID, assignedBy string) (AssignCourierCommand, error) {
	c := AssignCourierCommand{
		assignedBy: strings.TrimSpace(assignedBy),
		guard:      guard.NewConstructorGuard(),
	}

	var errOrder, errCourier error
	if orderID.IsZero() {
		errOrder = errs.NewValueIsRequiredError("order id")
	}
	if courierID.IsZero() {
		errCourier = errs.NewValueIsRequiredError("courier id")
	}
	if err := errors.Join(errOrder, errCourier); err != nil {
		return AssignCourierCommand{}, err
	}

	c.orderID = orderID
	c.courierID = courierID
	return c, nil
}

func (c AssignCourierCommand) Validate() error {
	return c.guard.Validate(ErrAssignCourierCommandIsNotConstructed)
}

func (c AssignCourierCommand) OrderID() kernel.UUID   { return c.orderID }
func (c AssignCourierCommand) CourierID() kernel.UUID { return c.courierID }
func (c AssignCourierCommand) AssignedBy() string     { return c.assignedBy }
