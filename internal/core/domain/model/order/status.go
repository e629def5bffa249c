package order

import (
	"fmt"

	"github.com/arrows94/3d-order-manager/internal/pkg/errs"
)

// Status represents the lifecycle state of a print order. It implements a
// state machine with an explicit transition table so that orders can only
// move along defined edges.
//
// State transitions:
//
//	New ──┬──> AwaitingPrice ──> PriceSent ──┬──> PriceAccepted ──> Completed
//	      │                                  │
//	      └──> Rejected                      └──> PriceRejected
//
// Rejected, PriceRejected and Completed are terminal: no outgoing edges.
// Each transition method returns the new status or an InvalidTransitionError;
// nothing mutates in place.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// New is the initial status of every submitted order,
	// waiting for operator triage.
	New

	// Rejected means the operator declined the order. Terminal.
	Rejected

	// AwaitingPrice means the operator accepted the order
	// and still has to propose a price.
	AwaitingPrice

	// PriceSent means a price offer is out,
	// waiting for the customer's decision.
	PriceSent

	// PriceAccepted means the customer accepted the offer
	// and the print can be produced.
	PriceAccepted

	// PriceRejected means the customer declined the offer. Terminal.
	PriceRejected

	// Completed means the accepted order has been printed
	// and handed over. Terminal.
	Completed
)

// getStatusStrings returns string representations for every Status,
// including Unknown.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:       "Unknown",
		New:           "New",
		Rejected:      "Rejected",
		AwaitingPrice: "AwaitingPrice",
		PriceSent:     "PriceSent",
		PriceAccepted: "PriceAccepted",
		PriceRejected: "PriceRejected",
		Completed:     "Completed",
	}
}

// getValidStatusStrings returns only the statuses an order may legally hold.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		New:           "New",
		Rejected:      "Rejected",
		AwaitingPrice: "AwaitingPrice",
		PriceSent:     "PriceSent",
		PriceAccepted: "PriceAccepted",
		PriceRejected: "PriceRejected",
		Completed:     "Completed",
	}
}

// Validate checks that the Status is one of the seven enumerated values.
// Values read back from persistence must pass this before entering the model.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the status name, or "Unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status has no outgoing transitions.
// Terminal orders are kept for audit but excluded from the operator queue.
func (s Status) IsTerminal() bool {
	return s == Rejected || s == PriceRejected || s == Completed
}

// ValidateCanHavePrice validates the consistency between status and price
// presence. A price exists if and only if an offer has been sent: once set
// during the transition to PriceSent it persists through every later status.
func (s Status) ValidateCanHavePrice(hasPrice bool) error {
	priced := s == PriceSent || s == PriceAccepted || s == PriceRejected || s == Completed

	if hasPrice && !priced {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to have a price", s))
	}
	if !hasPrice && priced {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to have no price", s))
	}
	return nil
}

// Accept transitions New -> AwaitingPrice (operator takes the order).
func (s Status) Accept() (Status, error) {
	if s != New {
		return 0, errs.NewInvalidTransitionError(s.String(), "accept")
	}
	return AwaitingPrice, nil
}

// Reject transitions New -> Rejected (operator declines the order).
func (s Status) Reject() (Status, error) {
	if s != New {
		return 0, errs.NewInvalidTransitionError(s.String(), "reject")
	}
	return Rejected, nil
}

// SendPrice transitions AwaitingPrice -> PriceSent (operator offers a price).
func (s Status) SendPrice() (Status, error) {
	if s != AwaitingPrice {
		return 0, errs.NewInvalidTransitionError(s.String(), "set price")
	}
	return PriceSent, nil
}

// AcceptPrice transitions PriceSent -> PriceAccepted (customer agrees).
func (s Status) AcceptPrice() (Status, error) {
	if s != PriceSent {
		return 0, errs.NewInvalidTransitionError(s.String(), "accept price")
	}
	return PriceAccepted, nil
}

// RejectPrice transitions PriceSent -> PriceRejected (customer declines).
// PriceRejected is terminal; a declined offer is not re-priced.
func (s Status) RejectPrice() (Status, error) {
	if s != PriceSent {
		return 0, errs.NewInvalidTransitionError(s.String(), "reject price")
	}
	return PriceRejected, nil
}

// Complete transitions PriceAccepted -> Completed (print produced and
// handed over). An order can never reach Completed without having passed
// AwaitingPrice, PriceSent and PriceAccepted in that sequence.
func (s Status) Complete() (Status, error) {
	if s != PriceAccepted {
		return 0, errs.NewInvalidTransitionError(s.String(), "complete")
	}
	return Completed, nil
}
