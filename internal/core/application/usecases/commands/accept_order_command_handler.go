package commands

import (
	"context"
	"time"
)

// AcceptOrderCommandHandler moves an order from New to AwaitingPrice.
//
// The write is a conditional update keyed on the status read within this
// handler: if a concurrent reject (or another accept) got there first, the
// update fails with ConcurrentModificationError and exactly one of the two
// racing transitions has been applied.
type AcceptOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAcceptOrderCommandHandler creates a handler for accepting orders.
func NewAcceptOrderCommandHandler(uowFactory OrderUoWFactory) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the accept command: load, transition, conditional write.
func (h AcceptOrderCommandHandler) Handle(ctx context.Context, cmd AcceptOrderCommand) error {
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
	if err = aggregate.Accept(cmd.Note(), time.Now().UTC()); err != nil {
		return err
	}

	if err = repo.UpdateInStatus(ctx, aggregate, readStatus); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
