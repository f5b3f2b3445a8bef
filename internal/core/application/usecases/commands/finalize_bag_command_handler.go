package commands

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/bag"
)

// FinalizeBagCommandHandler freezes a bag and moves every member order to the
// awaiting-pickup state in the same transaction. An over-capacity bag still
// finalizes; the returned result carries the overage for the operator to
// acknowledge.
type FinalizeBagCommandHandler struct {
	uowFactory UoWFactory
}

// NewFinalizeBagCommandHandler creates a handler for bag finalization.
func NewFinalizeBagCommandHandler(uowFactory UoWFactory) FinalizeBagCommandHandler {
	return FinalizeBagCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the finalization command and reports the outcome.
func (h *FinalizeBagCommandHandler) Handle(ctx context.Context, cmd FinalizeBagCommand) (bag.FinalizeResult, error) {
	if err := cmd.Validate(); err != nil {
		return bag.FinalizeResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return bag.FinalizeResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	bagRepo := uow.BagRepository()

	target, err := bagRepo.Get(ctx, cmd.BagID())
	if err != nil {
		return bag.FinalizeResult{}, err
	}

	now := time.Now()
	result, err := target.Finalize(now)
	if err != nil {
		return bag.FinalizeResult{}, err
	}

	members, err := orderRepo.GetAllInBag(ctx, target.ID())
	if err != nil {
		return bag.FinalizeResult{}, err
	}
	for _, member := range members {
		if err = member.MarkReadyForPickup(cmd.Actor(), now); err != nil {
			return bag.FinalizeResult{}, err
		}
		if err = orderRepo.Update(ctx, member); err != nil {
			return bag.FinalizeResult{}, err
		}
	}

	if err = bagRepo.Update(ctx, target); err != nil {
		return bag.FinalizeResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return bag.FinalizeResult{}, err
	}

	return result, nil
}
