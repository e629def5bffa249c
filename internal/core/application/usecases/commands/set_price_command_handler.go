package commands

import (
	"context"
	"time"
)

// SetPriceCommandHandler moves an order from AwaitingPrice to PriceSent and
// records the offered price in the same conditional write as the status.
type SetPriceCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewSetPriceCommandHandler creates a handler for sending price offers.
func NewSetPriceCommandHandler(uowFactory OrderUoWFactory) SetPriceCommandHandler {
	return SetPriceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the set-price command: load, transition, conditional write.
func (h SetPriceCommandHandler) Handle(ctx context.Context, cmd SetPriceCommand) error {
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
	aggregate, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	readStatus := aggregate.Status()
	if err = aggregate.SendPrice(cmd.Price(), time.Now().UTC()); err != nil {
		return err
	}

	if err = repo.UpdateInStatus(ctx, aggregate, readStatus); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
