package commands

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/services"
	"laundry/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order registration.
// Builds the order aggregate at the reception stage and attaches an initial
// ready-time estimate from the current machine snapshot.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	machines   ports.MachineStateProvider
	estimator  services.CompletionEstimator
	hours      services.OperatingHours
}

// NewCreateOrderCommandHandler creates a handler for order registration.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	machines ports.MachineStateProvider,
	estimator services.CompletionEstimator,
	hours services.OperatingHours,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		machines:   machines,
		estimator:  estimator,
		hours:      hours,
	}
}

// Handle processes the order registration command. Parses the primitive item
// and payment fields into domain values, creates the aggregate, estimates the
// ready time and persists the order in one transaction.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	items, err := parseItems(cmd.Items())
	if err != nil {
		return err
	}
	payment, err := order.PaymentMethodFromString(cmd.PaymentMethod())
	if err != nil {
		return err
	}

	now := time.Now()
	newOrder, err := order.NewOrder(cmd.OrderID(), cmd.CustomerRef(), items, payment, cmd.Actor(), now)
	if err != nil {
		return err
	}

	machines, err := h.machines.GetAll(ctx)
	if err != nil {
		return err
	}
	readyAt, err := h.estimator.Estimate(items, machines, h.hours, now)
	if err != nil {
		return err
	}
	newOrder.SetEstimatedReadyAt(readyAt, now)

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

func parseItems(specs []OrderItem) ([]order.LineItem, error) {
	items := make([]order.LineItem, 0, len(specs))
	for _, spec := range specs {
		serviceType, err := order.ServiceTypeFromString(spec.ServiceType)
		if err != nil {
			return nil, err
		}
		weight, err := kernel.NewWeight(spec.WeightGrams)
		if err != nil {
			return nil, err
		}
		item, err := order.NewLineItem(serviceType, weight, spec.Quantity, spec.UnitPriceCents, spec.Express)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
