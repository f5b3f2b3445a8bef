package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var ErrAdmitOrderCommandIsNotConstructed = errors.New(
	"AdmitOrderCommand must be created via NewAdmitOrderCommand constructor",
)

// AdmitOrderCommand represents a request to put a tagged order into a bag.
// With an explicit bag ID the operator chose the bag; without one the picker
// selects the oldest suitable filling bag.
type AdmitOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	bagID   *kernel.UUID

	guard guard.ConstructorGuard
}

// NewAdmitOrderCommand creates a command to admit an order into the named bag.
func NewAdmitOrderCommand(orderID, bagID kernel.UUID) (AdmitOrderCommand, error) {
	cmd := AdmitOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		bagID.Validate(),
	); err != nil {
		return AdmitOrderCommand{}, err
	}

	cmd.bagID = &bagID
	return cmd, nil
}

// NewAutoAdmitOrderCommand creates a command that leaves the bag choice to
// the automatic picker.
func NewAutoAdmitOrderCommand(orderID kernel.UUID) (AdmitOrderCommand, error) {
	cmd := AdmitOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return AdmitOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through a constructor.
func (c AdmitOrderCommand) Validate() error {
	return c.guard.Validate(ErrAdmitOrderCommandIsNotConstructed)
}

// OrderID returns the order to admit.
func (c AdmitOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// BagID returns the explicitly chosen bag, nil for automatic selection.
func (c AdmitOrderCommand) BagID() *kernel.UUID {
	if c.bagID == nil {
		return nil
	}
	id := *c.bagID
	return &id
}

func (c *AdmitOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
