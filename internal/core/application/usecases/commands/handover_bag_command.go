package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var (
	ErrHandoverBagCommandIsNotConstructed = errors.New(
		"HandoverBagCommand must be created via NewHandoverBagCommand constructor",
	)
	ErrCourierIsRequired = errors.New("courier name is required")
)

// HandoverBagCommand represents the custody transfer of a ready bag to a
// courier. The scanned set lists the member orders individually confirmed by
// scanning at handover; the allocator trusts it rather than recomputing.
type HandoverBagCommand struct { //nolint:recvcheck //using for validation
	bagID   kernel.UUID
	courier string
	scanned []kernel.UUID

	guard guard.ConstructorGuard
}

// NewHandoverBagCommand creates a command to hand a bag over.
func NewHandoverBagCommand(bagID kernel.UUID, courier string, scanned []kernel.UUID) (HandoverBagCommand, error) {
	cmd := HandoverBagCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBagID(bagID),
		cmd.setCourier(courier),
	); err != nil {
		return HandoverBagCommand{}, err
	}

	cmd.scanned = append([]kernel.UUID(nil), scanned...)
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c HandoverBagCommand) Validate() error {
	return c.guard.Validate(ErrHandoverBagCommandIsNotConstructed)
}

// BagID returns the bag to hand over.
func (c HandoverBagCommand) BagID() kernel.UUID {
	return c.bagID
}

// Courier returns the receiving courier's name.
func (c HandoverBagCommand) Courier() string {
	return c.courier
}

// Scanned returns the scan-confirmed member order ids.
func (c HandoverBagCommand) Scanned() []kernel.UUID {
	return append([]kernel.UUID(nil), c.scanned...)
}

func (c *HandoverBagCommand) setBagID(bagID kernel.UUID) error {
	if err := bagID.Validate(); err != nil {
		return err
	}

	c.bagID = bagID
	return nil
}

func (c *HandoverBagCommand) setCourier(courier string) error {
	if courier == "" {
		return ErrCourierIsRequired
	}

	c.courier = courier
	return nil
}
