package commands

import (
	"errors"

	"github.com/arrows94/3d-order-manager/internal/core/domain/model/kernel"
	"github.com/arrows94/3d-order-manager/internal/core/domain/model/order"
	"github.com/arrows94/3d-order-manager/internal/pkg/guard"
)

var ErrSubmitOrderCommandIsNotConstructed = errors.New(
	"SubmitOrderCommand must be created via NewSubmitOrderCommand constructor",
)

// SubmitOrderCommand represents a customer's request to open a new print
// order. The image upload, if any, has already completed: the command only
// carries the resulting reference inside the submission.
type SubmitOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	customerToken kernel.CustomerToken
	customer      order.Customer
	submission    order.Submission

	guard guard.ConstructorGuard
}

// NewSubmitOrderCommand creates a command to submit a new order. The order id
// and customer token are generated by the caller so the upload collaborator
// can scope files to the order id before the order record exists.
func NewSubmitOrderCommand(
	orderID kernel.UUID,
	customerToken kernel.CustomerToken,
	customer order.Customer,
	submission order.Submission,
) (SubmitOrderCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		customerToken.Validate(),
		customer.Validate(),
		submission.Validate(),
	); err != nil {
		return SubmitOrderCommand{}, err
	}

	return SubmitOrderCommand{
		orderID:       orderID,
		customerToken: customerToken,
		customer:      customer,
		submission:    submission,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitOrderCommand) Validate() error {
	return c.guard.Validate(ErrSubmitOrderCommandIsNotConstructed)
}

// OrderID returns the identifier for the order to create.
func (c SubmitOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerToken returns the credential to issue to the customer.
func (c SubmitOrderCommand) CustomerToken() kernel.CustomerToken {
	return c.customerToken
}

// Customer returns the submitter's contact details.
func (c SubmitOrderCommand) Customer() order.Customer {
	return c.customer
}

// Submission returns the submitted link and/or image reference.
func (c SubmitOrderCommand) Submission() order.Submission {
	return c.submission
}
