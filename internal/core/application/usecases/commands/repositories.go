// Package commands contains the write side of the order lifecycle: one
// command per transition of the state machine. Every handler follows the
// same discipline: validate the command, open a unit of work, load the
// aggregate, apply the transition in the domain model, and persist it with
// a conditional update keyed on the status read in this very handler. If a
// concurrent transition won the race the conditional update fails with
// ConcurrentModificationError and nothing is mutated; handlers never retry.
package commands

import (
	"context"

	"github.com/arrows94/3d-order-manager/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// OrderUoW manages a transaction around order mutations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates a fresh unit of work per command,
	// isolating concurrent requests from each other.
	OrderUoWFactory interface {
		Create() OrderUoW
	}
)
