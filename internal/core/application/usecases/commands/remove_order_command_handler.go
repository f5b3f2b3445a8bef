package commands

import (
	"context"
	"time"
)

// RemoveOrderCommandHandler handles taking an order out of a filling bag.
// The bag-side decrement and the order-side release commit together.
type RemoveOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewRemoveOrderCommandHandler creates a handler for bag removal.
func NewRemoveOrderCommandHandler(uowFactory UoWFactory) RemoveOrderCommandHandler {
	return RemoveOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the removal command.
func (h *RemoveOrderCommandHandler) Handle(ctx context.Context, cmd RemoveOrderCommand) error {
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

	orderRepo := uow.OrderRepository()
	bagRepo := uow.BagRepository()

	memberBag, err := bagRepo.Get(ctx, cmd.BagID())
	if err != nil {
		return err
	}
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	now := time.Now()
	if err = memberBag.Remove(aggregate.ID(), now); err != nil {
		return err
	}
	if err = aggregate.ReleaseFromBag(now); err != nil {
		return err
	}

	if err = bagRepo.Update(ctx, memberBag); err != nil {
		return err
	}
	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
