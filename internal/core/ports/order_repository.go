// Package ports defines the contracts between the core and its adapters:
// order persistence, transaction control, upload storage and operator
// authentication. The core depends only on these interfaces.
package ports

import (
	"context"

	"github.com/arrows94/3d-order-manager/internal/core/domain/model/kernel"
	"github.com/arrows94/3d-order-manager/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
//
// UpdateInStatus is the only mutation path for existing orders: it writes
// the aggregate's current state conditionally on the persisted status still
// matching expectedStatus. If another writer got there first it fails with
// ConcurrentModificationError and the aggregate remains unchanged in storage.
// No code path outside UpdateInStatus may write status or price.
type OrderRepository interface {
	// Add persists a newly submitted order. The order must be valid and
	// carry a unique id and customer token.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its unique identifier.
	// Fails with ObjectNotFoundError if absent.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByCustomerToken retrieves the single order issued to the given
	// customer token, for the tracking view. Fails with ObjectNotFoundError
	// if no order matches.
	GetByCustomerToken(ctx context.Context, token kernel.CustomerToken) (*order.Order, error)

	// UpdateInStatus persists the aggregate's state only if the stored
	// status still equals expectedStatus (compare-and-swap). Fails with
	// ConcurrentModificationError when another transition won the race,
	// or ObjectNotFoundError when the order no longer exists.
	UpdateInStatus(ctx context.Context, aggregate *order.Order, expectedStatus order.Status) error

	// GetAllActive retrieves all orders not in a terminal status,
	// ordered oldest-first for triage fairness.
	GetAllActive(ctx context.Context) ([]*order.Order, error)
}
