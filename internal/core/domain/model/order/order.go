package order

import (
	"errors"
	"fmt"
	"time"

	"github.com/arrows94/3d-order-manager/internal/core/domain/model/kernel"
	"github.com/arrows94/3d-order-manager/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder. This ensures all orders are validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// maxNoteLength bounds the persisted operator and customer notes.
const maxNoteLength = 2000

// Order is the aggregate root of the print shop: one customer request
// moving through triage, pricing, decision and production.
//
// Order maintains these invariants:
//   - status is always one of the seven enumerated values
//   - a price is set if and only if the status is PriceSent or later
//   - id and customer token never change after creation
//   - updatedAt changes on lifecycle transitions only
//   - customer-side transitions require the matching customer token
//
// All fields are private; the only way to change state is through the
// transition methods, which delegate the legality check to Status.
type Order struct {
	// id is the unique identifier assigned at creation
	id kernel.UUID

	// customerToken authorizes the submitting customer's actions
	customerToken kernel.CustomerToken

	// customer holds the submitter's contact details
	customer Customer

	// submission is the link and/or image the customer handed in
	submission Submission

	// price is the operator's offer (nil until a price is sent)
	price *kernel.Price

	// operatorNote is an optional remark set during triage
	operatorNote string

	// customerNote is an optional remark set with the price decision
	customerNote string

	// status is the current state in the order lifecycle
	status Status

	createdAt time.Time
	updatedAt time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a freshly submitted order in New status. This is the only
// entry point into the lifecycle: every order starts at New, with the
// creation time stamped on both createdAt and updatedAt.
func NewOrder(
	id kernel.UUID,
	customerToken kernel.CustomerToken,
	customer Customer,
	submission Submission,
	now time.Time,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		customerToken.Validate(),
		customer.Validate(),
		submission.Validate(),
	); err != nil {
		return nil, err
	}
	if now.IsZero() {
		return nil, errs.NewValueIsRequiredError("creation time")
	}

	return &Order{
		id:            id,
		customerToken: customerToken,
		customer:      customer,
		submission:    submission,
		status:        New,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}, nil
}

// RestoreOrder reconstructs an order from persistence. It re-validates every
// invariant, in particular that a price is present exactly when the status
// says an offer has been sent, so corrupt rows cannot enter the domain.
func RestoreOrder(
	id kernel.UUID,
	customerToken kernel.CustomerToken,
	customer Customer,
	submission Submission,
	status Status,
	price *kernel.Price,
	operatorNote string,
	customerNote string,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		customerToken.Validate(),
		customer.Validate(),
		submission.Validate(),
		status.Validate(),
		status.ValidateCanHavePrice(price != nil),
	); err != nil {
		return nil, err
	}
	if price != nil {
		if err := price.Validate(); err != nil {
			return nil, err
		}
	}

	return &Order{
		id:            id,
		customerToken: customerToken,
		customer:      customer,
		submission:    submission,
		status:        status,
		price:         price,
		operatorNote:  operatorNote,
		customerNote:  customerNote,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerToken returns the credential issued to the submitting customer.
// It must only ever surface on customer-facing views of this very order.
func (o *Order) CustomerToken() kernel.CustomerToken {
	return o.customerToken
}

// Customer returns the submitter's contact details.
func (o *Order) Customer() Customer {
	return o.customer
}

// Submission returns the submitted link and/or image reference.
func (o *Order) Submission() Submission {
	return o.submission
}

// Price returns the offered price, or nil while no offer has been sent.
func (o *Order) Price() *kernel.Price {
	return o.price
}

// OperatorNote returns the triage remark, empty when none was given.
func (o *Order) OperatorNote() string {
	return o.operatorNote
}

// CustomerNote returns the remark attached to the price decision.
func (o *Order) CustomerNote() string {
	return o.customerNote
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the submission timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the timestamp of the last lifecycle transition.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Accept moves the order from New to AwaitingPrice (operator action).
// An optional note is kept for the customer-facing tracking view.
func (o *Order) Accept(note string, now time.Time) error {
	newStatus, err := o.status.Accept()
	if err != nil {
		return err
	}
	if err = validateNote(note); err != nil {
		return err
	}

	o.status = newStatus
	if note != "" {
		o.operatorNote = note
	}
	o.updatedAt = now
	return nil
}

// Reject moves the order from New to Rejected (operator action). Terminal.
func (o *Order) Reject(note string, now time.Time) error {
	newStatus, err := o.status.Reject()
	if err != nil {
		return err
	}
	if err = validateNote(note); err != nil {
		return err
	}

	o.status = newStatus
	if note != "" {
		o.operatorNote = note
	}
	o.updatedAt = now
	return nil
}

// SendPrice moves the order from AwaitingPrice to PriceSent and records the
// offered price (operator action). The price is set exactly here and is
// immutable afterwards; it persists through all subsequent statuses.
func (o *Order) SendPrice(price kernel.Price, now time.Time) error {
	if err := price.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.SendPrice()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.price = &price
	o.updatedAt = now
	return nil
}

// AcceptPrice moves the order from PriceSent to PriceAccepted (customer
// action). The presented token must match the one issued at creation;
// a mismatch fails with UnauthorizedError and changes nothing.
func (o *Order) AcceptPrice(presented kernel.CustomerToken, note string, now time.Time) error {
	if err := o.authorizeCustomer(presented); err != nil {
		return err
	}
	if err := validateNote(note); err != nil {
		return err
	}

	newStatus, err := o.status.AcceptPrice()
	if err != nil {
		return err
	}

	o.status = newStatus
	if note != "" {
		o.customerNote = note
	}
	o.updatedAt = now
	return nil
}

// RejectPrice moves the order from PriceSent to PriceRejected (customer
// action, matching token required). Terminal.
func (o *Order) RejectPrice(presented kernel.CustomerToken, note string, now time.Time) error {
	if err := o.authorizeCustomer(presented); err != nil {
		return err
	}
	if err := validateNote(note); err != nil {
		return err
	}

	newStatus, err := o.status.RejectPrice()
	if err != nil {
		return err
	}

	o.status = newStatus
	if note != "" {
		o.customerNote = note
	}
	o.updatedAt = now
	return nil
}

// Complete moves the order from PriceAccepted to Completed (operator action).
// Terminal: the print has been produced and handed over.
func (o *Order) Complete(now time.Time) error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = now
	return nil
}

// authorizeCustomer verifies the presented token against the one issued at
// creation. The comparison is constant-time (see kernel.CustomerToken).
func (o *Order) authorizeCustomer(presented kernel.CustomerToken) error {
	if !o.customerToken.Matches(presented) {
		return errs.NewUnauthorizedError("customer token does not match order")
	}
	return nil
}

func validateNote(note string) error {
	if len(note) > maxNoteLength {
		return errs.NewValueIsInvalidErrorWithCause("note",
			fmt.Errorf("exceeds %d characters", maxNoteLength))
	}
	return nil
}
