package commands

import (
	"context"
	"time"

	"github.com/arrows94/3d-order-manager/internal/core/domain/model/order"
)

// SubmitOrderCommandHandler handles order submission. It creates the order
// in New status; triage, pricing and the customer decision happen later
// through their own commands.
type SubmitOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewSubmitOrderCommandHandler creates a handler for order submission.
func NewSubmitOrderCommandHandler(uowFactory OrderUoWFactory) SubmitOrderCommandHandler {
	return SubmitOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the submission. Creation is all-or-nothing: the order is
// persisted within a transaction that either commits the complete record or
// leaves nothing behind.
func (h SubmitOrderCommandHandler) Handle(ctx context.Context, cmd SubmitOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.CustomerToken(),
		cmd.Customer(),
		cmd.Submission(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
