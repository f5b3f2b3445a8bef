package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var ErrRemoveOrderCommandIsNotConstructed = errors.New(
	"RemoveOrderCommand must be created via NewRemoveOrderCommand constructor",
)

// RemoveOrderCommand represents a request to take an order back out of a
// filling bag.
type RemoveOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	bagID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveOrderCommand creates a command to remove an order from a bag.
func NewRemoveOrderCommand(orderID, bagID kernel.UUID) (RemoveOrderCommand, error) {
	cmd := RemoveOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setBagID(bagID),
	); err != nil {
		return RemoveOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveOrderCommand) Validate() error {
	return c.guard.Validate(ErrRemoveOrderCommandIsNotConstructed)
}

// OrderID returns the order to remove.
func (c RemoveOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// BagID returns the bag to remove it from.
func (c RemoveOrderCommand) BagID() kernel.UUID {
	return c.bagID
}

func (c *RemoveOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RemoveOrderCommand) setBagID(bagID kernel.UUID) error {
	if err := bagID.Validate(); err != nil {
		return err
	}

	c.bagID = bagID
	return nil
}
