package commands

import (
	"errors"

	"github.com/arrows94/3d-order-manager/internal/core/domain/model/kernel"
	"github.com/arrows94/3d-order-manager/internal/core/ports"
	"github.com/arrows94/3d-order-manager/internal/pkg/errs"
	"github.com/arrows94/3d-order-manager/internal/pkg/guard"
)

var ErrCompleteOrderCommandIsNotConstructed = errors.New(
	"CompleteOrderCommand must be created via NewCompleteOrderCommand constructor",
)

// CompleteOrderCommand represents the operator finishing a print:
// PriceAccepted -> Completed (terminal). Operator-only.
type CompleteOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	operator ports.Operator

	guard guard.ConstructorGuard
}

// NewCompleteOrderCommand creates a command to complete an order.
func NewCompleteOrderCommand(orderID kernel.UUID, operator ports.Operator) (CompleteOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return CompleteOrderCommand{}, err
	}
	if !operator.IsAuthenticated() {
		return CompleteOrderCommand{}, errs.NewUnauthorizedError("complete order requires an operator")
	}

	return CompleteOrderCommand{
		orderID:  orderID,
		operator: operator,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to complete.
func (c CompleteOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Operator returns the verified operator identity.
func (c CompleteOrderCommand) Operator() ports.Operator {
	return c.operator
}
