package order

import (
	"fmt"

	"shiptrack/internal/pkg/errs"
)

// TransitionPolicy is the single place that decides whether an order may move
// from one status to another. The zero value is permissive.
type TransitionPolicy struct {
	// allowed maps a source status to its permitted targets. A nil map allows
	// every transition between valid statuses.
	allowed map[Status]map[Status]struct{}
}

// PermissivePolicy allows any valid target from any source, including
// re-entering the current status.
func PermissivePolicy() TransitionPolicy {
	return TransitionPolicy{}
}

// StrictPolicy enforces forward progress along the happy path. Any
// non-terminal order may be cancelled or flagged, and a flagged order may
// resume at any later stage. Delivered and Cancelled accept nothing.
func StrictPolicy() TransitionPolicy {
	forward := map[Status][]Status{
		Pending:        {Confirmed},
		Confirmed:      {Shipped},
		Shipped:        {InTransit},
		InTransit:      {OutForDelivery},
		OutForDelivery: {Delivered},
		Flagged:        {Confirmed, Shipped, InTransit, OutForDelivery, Delivered},
	}

	allowed := make(map[Status]map[Status]struct{}, len(AllStatuses()))
	for _, from := range AllStatuses() {
		targets := make(map[Status]struct{})
		if !from.IsTerminal() {
			for _, to := range forward[from] {
				targets[to] = struct{}{}
			}
			targets[Cancelled] = struct{}{}
			if from != Flagged {
				targets[Flagged] = struct{}{}
			}
		}
		allowed[from] = targets
	}

	return TransitionPolicy{allowed: allowed}
}

// NewTransitionPolicy picks StrictPolicy when strict is set.
func NewTransitionPolicy(strict bool) TransitionPolicy {
	if strict {
		return StrictPolicy()
	}
	return PermissivePolicy()
}

// IsStrict reports whether the policy restricts anything.
func (p TransitionPolicy) IsStrict() bool {
	return p.allowed != nil
}

// Check returns a ValueIsInvalidError when from -> to is not allowed.
func (p TransitionPolicy) Check(from, to Status) error {
	if err := to.Validate(); err != nil {
		return err
	}
	if p.allowed == nil {
		return nil
	}
	if _, ok := p.allowed[from][to]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("transition from %s to %s is not allowed", from, to),
		)
	}
	return nil
}
