package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var ErrFinalizeBagCommandIsNotConstructed = errors.New(
	"FinalizeBagCommand must be created via NewFinalizeBagCommand constructor",
)

// FinalizeBagCommand represents a request to freeze a bag's membership and
// issue its manifest.
type FinalizeBagCommand struct { //nolint:recvcheck //using for validation
	bagID kernel.UUID
	actor string

	guard guard.ConstructorGuard
}

// NewFinalizeBagCommand creates a command to finalize a bag.
func NewFinalizeBagCommand(bagID kernel.UUID, actor string) (FinalizeBagCommand, error) {
	cmd := FinalizeBagCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBagID(bagID),
		cmd.setActor(actor),
	); err != nil {
		return FinalizeBagCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c FinalizeBagCommand) Validate() error {
	return c.guard.Validate(ErrFinalizeBagCommandIsNotConstructed)
}

// BagID returns the bag to finalize.
func (c FinalizeBagCommand) BagID() kernel.UUID {
	return c.bagID
}

// Actor returns who finalized the bag.
func (c FinalizeBagCommand) Actor() string {
	return c.actor
}

func (c *FinalizeBagCommand) setBagID(bagID kernel.UUID) error {
	if err := bagID.Validate(); err != nil {
		return err
	}

	c.bagID = bagID
	return nil
}

func (c *FinalizeBagCommand) setActor(actor string) error {
	if actor == "" {
		return ErrActorIsRequired
	}

	c.actor = actor
	return nil
}
