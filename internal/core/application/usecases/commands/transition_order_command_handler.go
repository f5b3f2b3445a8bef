package commands

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/order"
)

// TransitionOrderCommandHandler advances an order through its stage sequence.
// All legality rules live in the aggregate; the handler parses, loads, applies
// and persists.
type TransitionOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewTransitionOrderCommandHandler creates a handler for stage transitions.
func NewTransitionOrderCommandHandler(uowFactory OrderUoWFactory) TransitionOrderCommandHandler {
	return TransitionOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the transition command.
func (h *TransitionOrderCommandHandler) Handle(ctx context.Context, cmd TransitionOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	target, err := order.StageFromString(cmd.TargetStage())
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.TransitionTo(target, cmd.Actor(), cmd.Note(), time.Now()); err != nil {
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
