package commands

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/bag"
	"laundry/internal/core/domain/services"
)

// AdmitOrderCommandHandler handles bag admission. The bag-side membership
// change and the order-side write-back (bag reference, in_bag sub-status)
// commit together; the returned result carries the mixed-priority warning
// when the admission changed the bag's classification.
type AdmitOrderCommandHandler struct {
	uowFactory UoWFactory
	picker     services.BagPicker
}

// NewAdmitOrderCommandHandler creates a handler for bag admission.
func NewAdmitOrderCommandHandler(uowFactory UoWFactory) AdmitOrderCommandHandler {
	return AdmitOrderCommandHandler{
		uowFactory: uowFactory,
		picker:     services.NewBagPicker(),
	}
}

// Handle processes the admission command and reports the admission outcome.
func (h *AdmitOrderCommandHandler) Handle(ctx context.Context, cmd AdmitOrderCommand) (bag.AdmissionResult, error) {
	if err := cmd.Validate(); err != nil {
		return bag.AdmissionResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return bag.AdmissionResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	bagRepo := uow.BagRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return bag.AdmissionResult{}, err
	}

	var target *bag.Bag
	if bagID := cmd.BagID(); bagID != nil {
		target, err = bagRepo.Get(ctx, *bagID)
	} else {
		var candidates []*bag.Bag
		candidates, err = bagRepo.GetAllFilling(ctx)
		if err != nil {
			return bag.AdmissionResult{}, err
		}
		target, err = h.picker.Pick(aggregate, candidates)
	}
	if err != nil {
		return bag.AdmissionResult{}, err
	}

	now := time.Now()
	result, err := target.Admit(aggregate, now)
	if err != nil {
		return bag.AdmissionResult{}, err
	}
	if err = aggregate.AssignToBag(target.ID(), now); err != nil {
		return bag.AdmissionResult{}, err
	}

	if err = bagRepo.Update(ctx, target); err != nil {
		return bag.AdmissionResult{}, err
	}
	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return bag.AdmissionResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return bag.AdmissionResult{}, err
	}

	return result, nil
}
