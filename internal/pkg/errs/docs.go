// Package errs provides the error taxonomy shared by the domain, the use cases and the adapters.
//
// The package includes one error type per failure kind:
//   - ObjectNotFoundError: a referenced order, offer, visitor, client or payment does not exist
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: malformed input
//   - ConflictError: the operation clashes with another entity's state (offer already sold,
//     deleting a confirmed order)
//   - PreconditionFailedError: a status transition attempted from a state that disallows it
//   - TransientError: storage contention that may succeed when retried
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrConflict)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel and, when present, the cause, so callers
//     classify with errors.Is and still reach the underlying error
package errs
