package commands

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/services"
)

// BindTagCommandHandler handles tag binding. A successful first binding
// advances the order from reception to sorting as a domain side effect.
type BindTagCommandHandler struct {
	uowFactory OrderUoWFactory
	registry   services.TagRegistry
}

// NewBindTagCommandHandler creates a handler for tag binding operations.
func NewBindTagCommandHandler(uowFactory OrderUoWFactory) BindTagCommandHandler {
	return BindTagCommandHandler{
		uowFactory: uowFactory,
		registry:   services.NewTagRegistry(),
	}
}

// Handle processes the binding command through the tag registry and persists
// the updated order.
func (h *BindTagCommandHandler) Handle(ctx context.Context, cmd BindTagCommand) error {
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

	now := time.Now()
	if cmd.Fallback() {
		_, err = h.registry.BindFallback(aggregate, cmd.Actor(), now)
	} else {
		var tagType order.TagType
		tagType, err = order.TagTypeFromString(cmd.TagType())
		if err != nil {
			return err
		}
		_, err = h.registry.Bind(aggregate, cmd.RawCode(), tagType, cmd.Actor(), now)
	}
	if err != nil {
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
