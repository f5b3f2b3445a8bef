package commands

import (
	"context"
	"time"

	"laundry/internal/core/domain/services"
	"laundry/internal/core/ports"
)

// RecalculateEstimatesCommandHandler refreshes the ready-time estimate of
// every uncompleted order from the current machine availability snapshot.
// All updates occur within a single transaction.
type RecalculateEstimatesCommandHandler struct {
	uowFactory OrderUoWFactory
	machines   ports.MachineStateProvider
	estimator  services.CompletionEstimator
	hours      services.OperatingHours
}

// NewRecalculateEstimatesCommandHandler creates a handler for the batch
// estimate refresh.
func NewRecalculateEstimatesCommandHandler(
	uowFactory OrderUoWFactory,
	machines ports.MachineStateProvider,
	estimator services.CompletionEstimator,
	hours services.OperatingHours,
) RecalculateEstimatesCommandHandler {
	return RecalculateEstimatesCommandHandler{
		uowFactory: uowFactory,
		machines:   machines,
		estimator:  estimator,
		hours:      hours,
	}
}

// Handle processes the refresh command.
func (h *RecalculateEstimatesCommandHandler) Handle(ctx context.Context, cmd RecalculateEstimatesCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	machines, err := h.machines.GetAll(ctx)
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
	orders, err := orderRepo.GetAllUncompleted(ctx)
	if err != nil {
		return err
	}

	now := time.Now()
	for _, aggregate := range orders {
		readyAt, estimateErr := h.estimator.Estimate(aggregate.Items(), machines, h.hours, now)
		if estimateErr != nil {
			return estimateErr
		}
		aggregate.SetEstimatedReadyAt(readyAt, now)

		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
