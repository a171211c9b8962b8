// Package errs provides standardized error types for the movers application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ObjectNotFoundError: For when a referenced mover or item cannot be found
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - InvalidStateError: For when a lifecycle transition is not allowed from the current state
//   - CapacityExceededError: For when a cargo load would exceed a mover's weight limit
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// This standardized approach keeps the error taxonomy closed: callers classify
// failures with errors.Is against the sentinels rather than string matching,
// and the HTTP layer maps each sentinel to a status code.
package errs
