// Package errs provides standardized error types for the restaurant application.
// Every error type pairs a sentinel (used with errors.Is by the HTTP boundary)
// with a struct carrying the details of the failure.
//
// The package includes:
//   - ValueIsRequiredError: a required value is missing (e.g. an order without items)
//   - ValueIsInvalidError: a value is malformed or violates a business rule
//   - ValueIsOutOfRangeError: a value falls outside of an allowed range
//   - ObjectNotFoundError: a referenced entity does not exist
//   - StatusTransitionIsInvalidError: the order workflow rejects a status change
//   - ObjectIsReferencedError: an entity cannot be removed while others point to it
//
// Each type has a constructor with and without a cause, an Error method and an
// Unwrap method returning its sentinel.
package errs
