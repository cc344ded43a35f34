package commands

import (
	"errors"
	"strings"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/order"
	"shiptrack/internal/pkg/errs"
	"shiptrack/internal/pkg/guard"
)

const locationUpdateDescription = "Package location updated"

var ErrAddTrackingEventCommandIsNotConstructed = errors.New(
	"AddTrackingEventCommand must be created via NewAddTrackingEventCommand constructor",
)

// AddTrackingEventCommand records an out-of-band event, such as a location
// ping, that surfaces ahead of the status history. It does not change status.
type AddTrackingEventCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	label       string
	description string
	location    string
	updatedBy   string

	guard guard.ConstructorGuard
}

// NewAddTrackingEventCommand builds a sub-event with an arbitrary label.
func NewAddTrackingEventCommand(
	orderID kernel.UUID,
	label, description, location, updatedBy string,
) (AddTrackingEventCommand, error) {
	c := AddTrackingEventCommand{
		description: strings.TrimSpace(description),
		location:    strings.TrimSpace(location),
		updatedBy:   strings.TrimSpace(updatedBy),
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setOrderID(orderID),
		c.setLabel(label),
	); err != nil {
		return AddTrackingEventCommand{}, err
	}

	return c, nil
}

// NewRecordLocationCommand builds a LOCATION_UPDATE sub-event for location.
func NewRecordLocationCommand(orderID kernel.UUID, location, updatedBy string) (AddTrackingEventCommand, error) {
	if strings.TrimSpace(location) == "" {
		return AddTrackingEventCommand{}, errs.NewValueIsRequiredError("location")
	}
	return NewAddTrackingEventCommand(orderID, order.EventLocationUpdate, locationUpdateDescription, location, updatedBy)
}

func (c AddTrackingEventCommand) Validate() error {
	return c.guard.Validate(ErrAddTrackingEventCommandIsNotConstructed)
}

func (c AddTrackingEventCommand) OrderID() kernel.UUID { return c.orderID }
func (c AddTrackingEventCommand) Label() string        { return c.label }
func (c AddTrackingEventCommand) Description() string  { return c.description }
func (c AddTrackingEventCommand) Location() string     { return c.location }
func (c AddTrackingEventCommand) UpdatedBy() string    { return c.updatedBy }

func (c *AddTrackingEventCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *AddTrackingEventCommand) setLabel(label string) error {
	label = strings.ToUpper(strings.TrimSpace(label))
	if label == "" {
		return errs.NewValueIsRequiredError("event status")
	}
	c.label = label
	return nil
}
