package commands

import (
	"errors"
	"fmt"

	"github.com/arrows94/3d-order-manager/internal/core/domain/model/kernel"
	"github.com/arrows94/3d-order-manager/internal/pkg/errs"
	"github.com/arrows94/3d-order-manager/internal/pkg/guard"
)

var ErrDecidePriceCommandIsNotConstructed = errors.New(
	"DecidePriceCommand must be created via NewDecidePriceCommand constructor",
)

// PriceDecision is the customer's verdict on a price offer.
type PriceDecision int

const (
	// DecisionUnknown catches uninitialized decisions.
	DecisionUnknown PriceDecision = iota

	// DecisionAccept moves the order to PriceAccepted.
	DecisionAccept

	// DecisionReject moves the order to PriceRejected (terminal).
	DecisionReject
)

// ParsePriceDecision converts the API's "accept"/"reject" strings.
func ParsePriceDecision(s string) (PriceDecision, error) {
	switch s {
	case "accept":
		return DecisionAccept, nil
	case "reject":
		return DecisionReject, nil
	default:
		return DecisionUnknown, errs.NewValueIsInvalidErrorWithCause("decision",
			fmt.Errorf("%q is neither accept nor reject", s))
	}
}

// Validate checks the decision is one of the two known verdicts.
func (d PriceDecision) Validate() error {
	if d != DecisionAccept && d != DecisionReject {
		return errs.NewValueIsInvalidError("decision")
	}
	return nil
}

// DecidePriceCommand represents the customer answering a price offer:
// PriceSent -> PriceAccepted or PriceSent -> PriceRejected. The customer is
// identified solely by the token issued at submission; the token both finds
// the order and authorizes the decision.
type DecidePriceCommand struct { //nolint:recvcheck //using for validation
	customerToken kernel.CustomerToken
	decision      PriceDecision
	note          string

	guard guard.ConstructorGuard
}

// NewDecidePriceCommand creates a command carrying the customer's decision.
func NewDecidePriceCommand(
	customerToken kernel.CustomerToken,
	decision PriceDecision,
	note string,
) (DecidePriceCommand, error) {
	if err := errors.Join(
		customerToken.Validate(),
		decision.Validate(),
	); err != nil {
		return DecidePriceCommand{}, err
	}

	return DecidePriceCommand{
		customerToken: customerToken,
		decision:      decision,
		note:          note,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DecidePriceCommand) Validate() error {
	return c.guard.Validate(ErrDecidePriceCommandIsNotConstructed)
}

// CustomerToken returns the credential presented by the customer.
func (c DecidePriceCommand) CustomerToken() kernel.CustomerToken {
	return c.customerToken
}

// Decision returns the customer's verdict.
func (c DecidePriceCommand) Decision() PriceDecision {
	return c.decision
}

// Note returns the optional remark attached to the decision.
func (c DecidePriceCommand) Note() string {
	return c.note
}
