package commands

import (
	"context"
	"time"
)

// CompleteOrderCommandHandler moves an order from PriceAccepted to Completed.
type CompleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCompleteOrderCommandHandler creates a handler for completing orders.
func NewCompleteOrderCommandHandler(uowFactory OrderUoWFactory) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the complete command: load, transition, conditional write.
func (h CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) error {
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
	if err = aggregate.Complete(time.Now().UTC()); err != nil {
		return err
	}

	if err = repo.UpdateInStatus(ctx, aggregate, readStatus); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
