package commands

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/kernel"
)

// HandoverBagCommandHandler transfers a ready bag to a courier. Every member
// must be scan-confirmed; on success the bag and all member orders move to
// in-transit together.
type HandoverBagCommandHandler struct {
	uowFactory UoWFactory
}

// NewHandoverBagCommandHandler creates a handler for bag handover.
func NewHandoverBagCommandHandler(uowFactory UoWFactory) HandoverBagCommandHandler {
	return HandoverBagCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the handover command.
func (h *HandoverBagCommandHandler) Handle(ctx context.Context, cmd HandoverBagCommand) error {
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

	scanned := make(map[kernel.UUID]bool, len(cmd.Scanned()))
	for _, id := range cmd.Scanned() {
		scanned[id] = true
	}

	now := time.Now()
	if err = target.Handover(cmd.Courier(), scanned, now); err != nil {
		return err
	}

	members, err := orderRepo.GetAllInBag(ctx, target.ID())
	if err != nil {
		return err
	}
	for _, member := range members {
		if err = member.MarkInTransit(cmd.Courier(), now); err != nil {
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
