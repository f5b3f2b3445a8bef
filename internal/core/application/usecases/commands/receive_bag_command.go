package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var ErrReceiveBagCommandIsNotConstructed = errors.New(
	"ReceiveBagCommand must be created via NewReceiveBagCommand constructor",
)

// ReceiveBagCommand represents the arrival of an in-transit bag at its
// destination.
type ReceiveBagCommand struct { //nolint:recvcheck //using for validation
	bagID kernel.UUID
	actor string

	guard guard.ConstructorGuard
}

// NewReceiveBagCommand creates a command to receive a bag.
func NewReceiveBagCommand(bagID kernel.UUID, actor string) (ReceiveBagCommand, error) {
	cmd := ReceiveBagCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBagID(bagID),
		cmd.setActor(actor),
	); err != nil {
		return ReceiveBagCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReceiveBagCommand) Validate() error {
	return c.guard.Validate(ErrReceiveBagCommandIsNotConstructed)
}

// BagID returns the bag being received.
func (c ReceiveBagCommand) BagID() kernel.UUID {
	return c.bagID
}

// Actor returns who confirmed the arrival.
func (c ReceiveBagCommand) Actor() string {
	return c.actor
}

func (c *ReceiveBagCommand) setBagID(bagID kernel.UUID) error {
	if err := bagID.Validate(); err != nil {
		return err
	}

	c.bagID = bagID
	return nil
}

func (c *ReceiveBagCommand) setActor(actor string) error {
	if actor == "" {
		return ErrActorIsRequired
	}

	c.actor = actor
	return nil
}
