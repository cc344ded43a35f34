package commands

import (
	"errors"
	"strings"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/errs"
	"shiptrack/internal/pkg/guard"
)

var ErrFlagOrderCommandIsNotConstructed = errors.New(
	"FlagOrderCommand must be created via NewFlagOrderCommand constructor",
)

// FlagOrderCommand reports a problem with an order. The reason is required.
type FlagOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	reason    string
	flaggedBy string

	guard guard.ConstructorGuard
}

func NewFlagOrderCommand(orderID kernel.UUID, reason, flaggedBy string) (FlagOrderCommand, error) {
	c := FlagOrderCommand{
		flaggedBy: strings.TrimSpace(flaggedBy),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setOrderID(orderID),
		c.setReason(reason),
	); err != nil {
		return FlagOrderCommand{}, err
	}

	return c, nil
}

func (c FlagOrderCommand) Validate() error {
	return c.guard.Validate(ErrFlagOrderCommandIsNotConstructed)
}

func (c FlagOrderCommand) OrderID() kernel.UUID { return c.orderID }
func (c FlagOrderCommand) Reason() string       { return c.reason }
func (c FlagOrderCommand) FlaggedBy() string    { return c.flaggedBy }

func (c *FlagOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *FlagOrderCommand) setReason(reason string) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return errs.NewValueIsRequiredError("flag reason")
	}
	c.reason = reason
	return nil
}
