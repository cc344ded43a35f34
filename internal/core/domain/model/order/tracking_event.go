package order

import (
	"errors"
	"strings"
	"time"

	"shiptrack/internal/pkg/errs"
	"shiptrack/internal/pkg/guard"
)

// Event labels that are not order statuses.
const (
	EventLocationUpdate  = "LOCATION_UPDATE"
	EventCourierAssigned = "COURIER_ASSIGNED"
)

const (
	creationLocation = "Seller Location"
	flagLocation     = "Customer Service"
	flagPrefix       = "Order flagged: "
)

var ErrTrackingEventIsNotConstructed = errors.New("TrackingEvent must be created via NewTrackingEvent constructor")

// TrackingEvent is one immutable entry of an order's timeline. Status is a
// label: either an order status name or a sub-event such as LOCATION_UPDATE.
// UpdatedBy is empty for system generated events.
type TrackingEvent struct {
	status      string
	description string
	location    string
	timestamp   time.Time
	updatedBy   string

	guard guard.ConstructorGuard
}

// NewTrackingEvent requires a status label and a timestamp; description,
// location and updatedBy are free text.
func NewTrackingEvent(status, description, location, updatedBy string, timestamp time.Time) (TrackingEvent, error) {
	status = strings.TrimSpace(status)

	var errStatus, errTimestamp error
	if status == "" {
		errStatus = errs.NewValueIsRequiredError("event status")
	}
	if timestamp.IsZero() {
		errTimestamp = errs.NewValueIsRequiredError("event timestamp")
	}
	if err := errors.Join(errStatus, errTimestamp); err != nil {
		return TrackingEvent{}, err
	}

	return TrackingEvent{
		status:      status,
		description: description,
		location:    location,
		timestamp:   timestamp,
		updatedBy:   updatedBy,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (e TrackingEvent) Validate() error {
	return e.guard.Validate(ErrTrackingEventIsNotConstructed)
}

func (e TrackingEvent) Status() string       { return e.status }
func (e TrackingEvent) Description() string  { return e.description }
func (e TrackingEvent) Location() string     { return e.location }
func (e TrackingEvent) Timestamp() time.Time { return e.timestamp }
func (e TrackingEvent) UpdatedBy() string    { return e.updatedBy }
