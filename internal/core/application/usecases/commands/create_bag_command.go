package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var (
	ErrCreateBagCommandIsNotConstructed = errors.New(
		"CreateBagCommand must be created via NewCreateBagCommand constructor",
	)
	ErrPriorityHintIsRequired = errors.New("priority hint is required")
	ErrDestinationIsRequired  = errors.New("destination is required")
)

// CreateBagCommand represents a request to open a new empty bag. A zero
// capacity selects the default ceiling.
type CreateBagCommand struct { //nolint:recvcheck //using for validation
	bagID         kernel.UUID
	priorityHint  string
	destination   string
	capacityGrams int64

	guard guard.ConstructorGuard
}

// NewCreateBagCommand creates a command to open a bag.
func NewCreateBagCommand(bagID kernel.UUID, priorityHint, destination string, capacityGrams int64) (CreateBagCommand, error) {
	cmd := CreateBagCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBagID(bagID),
		cmd.setPriorityHint(priorityHint),
		cmd.setDestination(destination),
	); err != nil {
		return CreateBagCommand{}, err
	}

	cmd.capacityGrams = capacityGrams
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateBagCommand) Validate() error {
	return c.guard.Validate(ErrCreateBagCommandIsNotConstructed)
}

// BagID returns the new bag's identifier.
func (c CreateBagCommand) BagID() kernel.UUID {
	return c.bagID
}

// PriorityHint returns the raw priority classification hint.
func (c CreateBagCommand) PriorityHint() string {
	return c.priorityHint
}

// Destination returns the raw destination name.
func (c CreateBagCommand) Destination() string {
	return c.destination
}

// CapacityGrams returns the requested capacity, 0 for the default.
func (c CreateBagCommand) CapacityGrams() int64 {
	return c.capacityGrams
}

func (c *CreateBagCommand) setBagID(bagID kernel.UUID) error {
	if err := bagID.Validate(); err != nil {
		return err
	}

	c.bagID = bagID
	return nil
}

func (c *CreateBagCommand) setPriorityHint(priorityHint string) error {
	if priorityHint == "" {
		return ErrPriorityHintIsRequired
	}

	c.priorityHint = priorityHint
	return nil
}

func (c *CreateBagCommand) setDestination(destination string) error {
	if destination == "" {
		return ErrDestinationIsRequired
	}

	c.destination = destination
	return nil
}
