// Package queries contains the read side of the application layer. Query
// handlers bypass the domain model and read projection rows straight from
// the database; they never mutate order state.
package queries

import (
	"errors"
	"time"

	"github.com/arrows94/3d-order-manager/internal/core/domain/model/kernel"
	"github.com/arrows94/3d-order-manager/internal/pkg/guard"
)

var ErrGetOrderQueueQueryIsNotConstructed = errors.New(
	"GetOrderQueueQuery must be created via NewGetOrderQueueQuery constructor",
)

// GetOrderQueueQuery retrieves the operator's work queue: every order that
// has not yet reached a terminal status, oldest submission first.
type GetOrderQueueQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrderQueueQuery creates a query for the active order queue.
// This is a parameterless query.
func NewGetOrderQueueQuery() GetOrderQueueQuery {
	return GetOrderQueueQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQueueQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueueQueryIsNotConstructed)
}

// GetOrderQueueQueryResponse is one row of the operator queue. The customer
// token is deliberately absent: the queue is an operator view and the token
// is the customer's credential, so it never appears here.
type GetOrderQueueQueryResponse struct {
	ID            kernel.UUID
	CustomerName  string
	CustomerEmail string
	Link          string
	ImageRef      string
	Status        string
	CreatedAt     time.Time
}
