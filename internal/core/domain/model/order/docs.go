// Package order provides the Order aggregate root of the shipment tracking
// system and the value objects it owns.
//
// The package includes:
//   - Order: identity, derived identifiers, product, shipping, pricing, status and timeline
//   - Status: the lifecycle states, and TransitionPolicy, the single decision point that
//     says which status changes are allowed
//   - Timeline and TrackingEvent: the auditable, never-rewritten event log
//   - Product, Dimensions, Shipping, Pricing: immutable sub-structures fixed at creation
//
// Key business rules:
//   - Order and tracking numbers are set once at construction and never change
//   - A constructed order always has at least one timeline event (the creation event)
//   - Pricing total always equals product value plus shipping cost
//   - UpdatedAt never moves backwards and only moves when status or timeline change
//   - Orders are never removed; cancelling and flagging are statuses
package order
