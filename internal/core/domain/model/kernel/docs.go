// Package kernel provides the value objects shared across the shipment tracking
// domain.
//
// The package includes:
//   - UUID: identifier for orders and the actors (seller, buyer, courier) they reference
//   - Address: postal address used as shipment origin and destination
//   - Role: the actor role an authenticated caller acts under
//
// Value objects are immutable once constructed and safe for concurrent use.
package kernel
