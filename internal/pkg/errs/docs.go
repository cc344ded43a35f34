// Package errs provides the error taxonomy shared by the shipment tracking core.
//
// The package includes:
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: malformed or
//     missing input, detected before any mutation (see IsValidation)
//   - InvalidInputError: a calculator was given input outside its domain
//   - ObjectNotFoundError: a referenced order or record is absent
//   - ObjectAlreadyExistsError: a unique identifier is already taken in the store
//   - VersionIsInvalidError: the stored aggregate changed since it was loaded
//   - UnavailableError: an external store, lock or notifier timed out or failed
//
// Each error type follows the same pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() for formatting and Unwrap() returning the sentinel, so errors.Is
//     matches on the category
package errs
