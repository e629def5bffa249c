package commands

import (
	"errors"

	"github.com/arrows94/3d-order-manager/internal/core/domain/model/kernel"
	"github.com/arrows94/3d-order-manager/internal/core/ports"
	"github.com/arrows94/3d-order-manager/internal/pkg/errs"
	"github.com/arrows94/3d-order-manager/internal/pkg/guard"
)

var ErrAcceptOrderCommandIsNotConstructed = errors.New(
	"AcceptOrderCommand must be created via NewAcceptOrderCommand constructor",
)

// AcceptOrderCommand represents the operator taking a new order into work:
// New -> AwaitingPrice. Operator-only.
type AcceptOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	operator ports.Operator
	note     string

	guard guard.ConstructorGuard
}

// NewAcceptOrderCommand creates a command to accept an order. The operator
// identity must come from the auth collaborator; an unauthenticated identity
// is refused here, before any order is even loaded.
func NewAcceptOrderCommand(orderID kernel.UUID, operator ports.Operator, note string) (AcceptOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return AcceptOrderCommand{}, err
	}
	if !operator.IsAuthenticated() {
		return AcceptOrderCommand{}, errs.NewUnauthorizedError("accept order requires an operator")
	}

	return AcceptOrderCommand{
		orderID:  orderID,
		operator: operator,
		note:     note,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptOrderCommand) Validate() error {
	return c.guard.Validate(ErrAcceptOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to accept.
func (c AcceptOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Operator returns the verified operator identity.
func (c AcceptOrderCommand) Operator() ports.Operator {
	return c.operator
}

// Note returns the optional triage remark.
func (c AcceptOrderCommand) Note() string {
	return c.note
}
