package commands

import (
	"context"
	"time"
)

// ReceiveBagCommandHandler confirms a bag's arrival at the facility. The bag
// becomes received and every member order enters the first processing stage
// after sorting for its service type, all in one transaction.
type ReceiveBagCommandHandler struct {
	uowFactory UoWFactory
}

// NewReceiveBagCommandHandler creates a handler for bag reception.
func NewReceiveBagCommandHandler(uowFactory UoWFactory) ReceiveBagCommandHandler {
	return ReceiveBagCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the reception command.
func (h *ReceiveBagCommandHandler) Handle(ctx context.Context, cmd ReceiveBagCommand) error {
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

	now := time.Now()
	if err = target.Receive(now); err != nil {
		return err
	}

	members, err := orderRepo.GetAllInBag(ctx, target.ID())
	if err != nil {
		return err
	}
	for _, member := range members {
		if err = member.ArriveAtFacility(cmd.Actor(), now); err != nil {
			return err
		}
		if err = orderRepo.Update(ctx, member); err != nil {
			return err
		}
	}

	if err = bagRepo.Update(ctx, target); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
