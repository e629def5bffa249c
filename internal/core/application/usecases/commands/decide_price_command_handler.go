package commands

import (
	"context"
	"time"
)

// DecidePriceCommandHandler applies the customer's price decision. The order
// is looked up by the presented token, so a customer can only ever reach
// their own order; the aggregate re-verifies the token before transitioning.
type DecidePriceCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewDecidePriceCommandHandler creates a handler for customer price decisions.
func NewDecidePriceCommandHandler(uowFactory OrderUoWFactory) DecidePriceCommandHandler {
	return DecidePriceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the decision: load by token, transition, conditional write.
func (h DecidePriceCommandHandler) Handle(ctx context.Context, cmd DecidePriceCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	aggregate, err := repo.GetByCustomerToken(ctx, cmd.CustomerToken())
	if err != nil {
		return err
	}

	readStatus := aggregate.Status()
	now := time.Now().UTC()

	switch cmd.Decision() {
	case DecisionAccept:
		err = aggregate.AcceptPrice(cmd.CustomerToken(), cmd.Note(), now)
	case DecisionReject:
		err = aggregate.RejectPrice(cmd.CustomerToken(), cmd.Note(), now)
	default:
		err = cmd.Decision().Validate()
	}
	if err != nil {
		return err
	}

	if err = repo.UpdateInStatus(ctx, aggregate, readStatus); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
