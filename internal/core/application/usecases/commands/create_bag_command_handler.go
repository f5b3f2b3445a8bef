package commands

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/bag"
	"laundry/internal/core/domain/model/kernel"
)

// CreateBagCommandHandler opens a new empty bag. The sequence number comes
// from the repository: max existing number for the destination class plus one.
type CreateBagCommandHandler struct {
	uowFactory BagUoWFactory
}

// NewCreateBagCommandHandler creates a handler for bag creation.
func NewCreateBagCommandHandler(uowFactory BagUoWFactory) CreateBagCommandHandler {
	return CreateBagCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the bag creation command. The sequence allocation and the
// insert run in one transaction so concurrent creations cannot share a number.
func (h *CreateBagCommandHandler) Handle(ctx context.Context, cmd CreateBagCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	priority, err := bag.PriorityFromString(cmd.PriorityHint())
	if err != nil {
		return err
	}
	destination, err := bag.DestinationFromString(cmd.Destination())
	if err != nil {
		return err
	}
	var capacity kernel.Weight
	if cmd.CapacityGrams() != 0 {
		capacity, err = kernel.NewWeight(cmd.CapacityGrams())
		if err != nil {
			return err
		}
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	bagRepo := uow.BagRepository()
	seq, err := bagRepo.NextSequence(ctx, destination)
	if err != nil {
		return err
	}

	newBag, err := bag.NewBag(cmd.BagID(), seq, priority, destination, capacity, time.Now())
	if err != nil {
		return err
	}

	if err = bagRepo.Add(ctx, newBag); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
