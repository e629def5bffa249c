// Package errs defines the error taxonomy of the order manager.
//
// Every failure a caller can act on is represented by a sentinel error plus
// a struct type carrying details:
//   - ValueIsRequiredError / ValueIsInvalidError: validation failures
//   - ObjectNotFoundError: unknown order id or customer token
//   - InvalidTransitionError: a lifecycle action not allowed from the current status
//   - ConcurrentModificationError: a conditional update lost the race to another writer
//   - UnauthorizedError: wrong actor or customer token
//   - StorageError: upload collaborator failure
//
// Each type follows the same pattern: a sentinel variable usable with
// errors.Is, constructors with and without a cause, Error() formatting and
// Unwrap() returning the sentinel. Errors are always surfaced to the caller
// with their kind intact; nothing in the core downgrades or retries them.
//
// The distinction between InvalidTransitionError and ConcurrentModificationError
// matters to callers: the former is a logic error and must stop the caller,
// the latter is expected under concurrent access and invites a re-fetch and retry.
package errs
