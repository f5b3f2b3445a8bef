package commands

import (
	"context"
	"time"
)

// DeleteBagCommandHandler destroys a filling bag. Every member order is
// released first, with the same effect as an individual removal, then the
// record is deleted; all of it in one transaction.
type DeleteBagCommandHandler struct {
	uowFactory UoWFactory
}

// NewDeleteBagCommandHandler creates a handler for bag deletion.
func NewDeleteBagCommandHandler(uowFactory UoWFactory) DeleteBagCommandHandler {
	return DeleteBagCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deletion command.
func (h *DeleteBagCommandHandler) Handle(ctx context.Context, cmd DeleteBagCommand) error {
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

	target, err := bagRepo.Get(ctx, cmd.BagID())
	if err != nil {
		return err
	}
	if err = target.Deletable(); err != nil {
		return err
	}

	members, err := orderRepo.GetAllInBag(ctx, target.ID())
	if err != nil {
		return err
	}

	now := time.Now()
	for _, member := range members {
		if err = member.ReleaseFromBag(now); err != nil {
			return err
		}
		if err = orderRepo.Update(ctx, member); err != nil {
			return err
		}
	}

	if err = bagRepo.Delete(ctx, target.ID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
