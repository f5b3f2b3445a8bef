package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var ErrDeleteBagCommandIsNotConstructed = errors.New(
	"DeleteBagCommand must be created via NewDeleteBagCommand constructor",
)

// DeleteBagCommand represents a request to destroy a filling bag, releasing
// every member order back to the unassigned sorting state.
type DeleteBagCommand struct { //nolint:recvcheck //using for validation
	bagID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteBagCommand creates a command to delete a bag.
func NewDeleteBagCommand(bagID kernel.UUID) (DeleteBagCommand, error) {
	cmd := DeleteBagCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setBagID(bagID); err != nil {
		return DeleteBagCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteBagCommand) Validate() error {
	return c.guard.Validate(ErrDeleteBagCommandIsNotConstructed)
}

// BagID returns the bag to delete.
func (c DeleteBagCommand) BagID() kernel.UUID {
	return c.bagID
}

func (c *DeleteBagCommand) setBagID(bagID kernel.UUID) error {
	if err := bagID.Validate(); err != nil {
		return err
	}

	c.bagID = bagID
	return nil
}
