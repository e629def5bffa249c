// Package order implements the print order aggregate and its lifecycle
// state machine.
//
// The package includes:
//   - Order: the aggregate root holding identity, submission, price and status
//   - Status: a closed enumeration with an explicit transition table
//   - Submission: the customer's link and/or uploaded image reference
//   - Customer: the submitting customer's contact details
//
// Lifecycle:
//
//	New ──┬──> AwaitingPrice ──> PriceSent ──┬──> PriceAccepted ──> Completed
//	      │                                  │
//	      └──> Rejected                      └──> PriceRejected
//
// Rejected, PriceRejected and Completed are terminal. Key invariants:
//   - a price is set if and only if the status is PriceSent or later
//   - the id and customer token never change after creation
//   - customer-side transitions require the matching customer token
//   - every transition stamps updatedAt; nothing else does
//
// All transitions are expressed as methods on the aggregate so that an
// illegal state change is impossible to persist.
package order
