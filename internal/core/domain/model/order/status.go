package order

import (
	"fmt"
	"strings"

	"shiptrack/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
//	Pending ─> Confirmed ─> Shipped ─> InTransit ─> OutForDelivery ─> Delivered
//	   │           │           │           │               │
//	   └───────────┴───────────┴─────┬─────┴───────────────┘
//	                                 ├─> Cancelled (terminal)
//	                                 └─> Flagged   (not terminal, may continue)
//
// Which of these arrows are enforced is decided by a TransitionPolicy.
type Status int

const (
	// Unknown catches uninitialized values.
	Unknown Status = iota
	Pending
	Confirmed
	Shipped
	InTransit
	OutForDelivery
	Delivered
	Cancelled
	Flagged
)

var statusNames = map[Status]string{
	Pending:        "PENDING",
	Confirmed:      "CONFIRMED",
	Shipped:        "SHIPPED",
	InTransit:      "IN_TRANSIT",
	OutForDelivery: "OUT_FOR_DELIVERY",
	Delivered:      "DELIVERED",
	Cancelled:      "CANCELLED",
	Flagged:        "FLAGGED",
}

var statusDescriptions = map[Status]string{
	Pending:        "Order created and pending confirmation",
	Confirmed:      "Order confirmed and ready for pickup",
	Shipped:        "Package has been picked up",
	InTransit:      "Package is in transit",
	OutForDelivery: "Package is out for delivery",
	Delivered:      "Package has been delivered",
	Cancelled:      "Order has been cancelled",
	Flagged:        "Order has been flagged for issues",
}

// AllStatuses lists the valid statuses in lifecycle order.
func AllStatuses() []Status {
	return []Status{Pending, Confirmed, Shipped, InTransit, OutForDelivery, Delivered, Cancelled, Flagged}
}

// ParseStatus accepts status names case-insensitively, e.g. "in_transit".
func ParseStatus(s string) (Status, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for status, candidate := range statusNames {
		if candidate == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", int(s)))
	}
	return nil
}

// String returns the status name as recorded in tracking events.
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// Description returns the customer-facing sentence for the status.
func (s Status) Description() string {
	if d, ok := statusDescriptions[s]; ok {
		return d
	}
	return "Unknown status"
}

// IsTerminal reports whether no further lifecycle progress is expected.
// Flagged is deliberately not terminal.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}
