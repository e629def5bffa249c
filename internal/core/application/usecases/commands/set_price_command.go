package commands

import (
	"errors"

	"github.com/arrows94/3d-order-manager/internal/core/domain/model/kernel"
	"github.com/arrows94/3d-order-manager/internal/core/ports"
	"github.com/arrows94/3d-order-manager/internal/pkg/errs"
	"github.com/arrows94/3d-order-manager/internal/pkg/guard"
)

var ErrSetPriceCommandIsNotConstructed = errors.New(
	"SetPriceCommand must be created via NewSetPriceCommand constructor",
)

// SetPriceCommand represents the operator sending a price offer:
// AwaitingPrice -> PriceSent. Operator-only. The price is strictly positive
// by construction of kernel.Price and immutable once the offer is out.
type SetPriceCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	operator ports.Operator
	price    kernel.Price

	guard guard.ConstructorGuard
}

// NewSetPriceCommand creates a command to send a price offer.
func NewSetPriceCommand(orderID kernel.UUID, operator ports.Operator, price kernel.Price) (SetPriceCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		price.Validate(),
	); err != nil {
		return SetPriceCommand{}, err
	}
	if !operator.IsAuthenticated() {
		return SetPriceCommand{}, errs.NewUnauthorizedError("set price requires an operator")
	}

	return SetPriceCommand{
		orderID:  orderID,
		operator: operator,
		price:    price,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SetPriceCommand) Validate() error {
	return c.guard.Validate(ErrSetPriceCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to price.
func (c SetPriceCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Operator returns the verified operator identity.
func (c SetPriceCommand) Operator() ports.Operator {
	return c.operator
}

// Price returns the offered price.
func (c SetPriceCommand) Price() kernel.Price {
	return c.price
}
