package commands

import (
	"context"
	"time"
)

// RejectOrderCommandHandler moves an order from New to Rejected. Racing
// against a concurrent accept is resolved by the conditional update: one
// of the two commits, the other fails with ConcurrentModificationError.
type RejectOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRejectOrderCommandHandler creates a handler for rejecting orders.
func NewRejectOrderCommandHandler(uowFactory OrderUoWFactory) RejectOrderCommandHandler {
	return RejectOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the reject command: load, transition, conditional write.
func (h RejectOrderCommandHandler) Handle(ctx context.Context, cmd RejectOrderCommand) error {
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
	if err = aggregate.Reject(cmd.Note(), time.Now().UTC()); err != nil {
		return err
	}

	if err = repo.UpdateInStatus(ctx, aggregate, readStatus); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
