package commands

import (
	"errors"

	"github.com/arrows94/3d-order-manager/internal/core/domain/model/kernel"
	"github.com/arrows94/3d-order-manager/internal/core/ports"
	"github.com/arrows94/3d-order-manager/internal/pkg/errs"
	"github.com/arrows94/3d-order-manager/internal/pkg/guard"
)

var ErrRejectOrderCommandIsNotConstructed = errors.New(
	"RejectOrderCommand must be created via NewRejectOrderCommand constructor",
)

// RejectOrderCommand represents the operator declining a new order:
// New -> Rejected (terminal). Operator-only.
type RejectOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	operator ports.Operator
	note     string

	guard guard.ConstructorGuard
}

// NewRejectOrderCommand creates a command to reject an order.
func NewRejectOrderCommand(orderID kernel.UUID, operator ports.Operator, note string) (RejectOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return RejectOrderCommand{}, err
	}
	if !operator.IsAuthenticated() {
		return RejectOrderCommand{}, errs.NewUnauthorizedError("reject order requires an operator")
	}

	return RejectOrderCommand{
		orderID:  orderID,
		operator: operator,
		note:     note,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectOrderCommand) Validate() error {
	return c.guard.Validate(ErrRejectOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to reject.
func (c RejectOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Operator returns the verified operator identity.
func (c RejectOrderCommand) Operator() ports.Operator {
	return c.operator
}

// Note returns the optional rejection reason shown to the customer.
func (c RejectOrderCommand) Note() string {
	return c.note
}
