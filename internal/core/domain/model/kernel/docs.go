// Package kernel provides the domain primitives shared across the order model:
//
//   - UUID: entity identifier wrapping github.com/google/uuid
//   - CustomerToken: unguessable per-order credential handed to the customer
//   - Price: monetary amount stored as cents with a currency code
//
// All three are immutable value objects. Their zero values are invalid and
// must be produced through the provided factory functions, which validate
// their inputs so that an invalid value can never enter the domain model.
package kernel
