package commands

import (
	"context"
	"time"

	"laundry/internal/core/domain/services"
)

// CancelOrderCommandHandler handles order cancellation behind the policy
// guard. When the order sits in a filling bag, the bag-side removal and the
// order-side cancellation land in the same transaction so the bag's weight
// and counters stay consistent.
type CancelOrderCommandHandler struct {
	uowFactory UoWFactory
	guard      services.CancellationGuard
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory UoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		guard:      services.NewCancellationGuard(),
	}
}

// Handle processes the cancellation command. The guard decides first; a
// forbidden or unapproved attempt leaves everything untouched.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = h.guard.Authorize(aggregate, cmd.Approved()); err != nil {
		return err
	}

	now := time.Now()
	if bagID := aggregate.BagID(); bagID != nil {
		bagRepo := uow.BagRepository()
		memberBag, bagErr := bagRepo.Get(ctx, *bagID)
		if bagErr != nil {
			return bagErr
		}
		if err = memberBag.Remove(aggregate.ID(), now); err != nil {
			return err
		}
		if err = aggregate.ReleaseFromBag(now); err != nil {
			return err
		}
		if err = bagRepo.Update(ctx, memberBag); err != nil {
			return err
		}
	}

	if err = aggregate.Cancel(cmd.Actor(), cmd.Note(), now); err != nil {
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
