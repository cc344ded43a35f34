// Package services provides stateless and near-stateless domain services used
// by the order lifecycle use cases. They hold business rules that do not belong
// to the Order aggregate itself.
//
// The package includes:
//   - ShippingCostCalculator: the linear shipping cost policy (base + weight * rate)
//   - IdentifierGenerator: ORD-/TRK- identifiers derived from random UUIDs
//
// Both are safe for concurrent use.
package services
