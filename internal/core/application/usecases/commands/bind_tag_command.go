package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var (
	ErrBindTagCommandIsNotConstructed = errors.New(
		"BindTagCommand must be created via NewBindTagCommand constructor",
	)
	ErrTagCodeIsRequired = errors.New("tag code is required")
)

// BindTagCommand represents a request to bind a physical tag to an order, or
// to issue a synthetic fallback tag when Fallback is set. In the fallback flow
// the raw code and tag type are ignored.
type BindTagCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	rawCode  string
	tagType  string
	fallback bool
	actor    string

	guard guard.ConstructorGuard
}

// NewBindTagCommand creates a command to bind a scanned tag code.
func NewBindTagCommand(orderID kernel.UUID, rawCode, tagType, actor string) (BindTagCommand, error) {
	cmd := BindTagCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setRawCode(rawCode),
		cmd.setActor(actor),
	); err != nil {
		return BindTagCommand{}, err
	}

	cmd.tagType = tagType
	return cmd, nil
}

// NewBindFallbackTagCommand creates a command for the lost-tag fallback flow:
// the code is derived by the registry and the type is forced to QR.
func NewBindFallbackTagCommand(orderID kernel.UUID, actor string) (BindTagCommand, error) {
	cmd := BindTagCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
	); err != nil {
		return BindTagCommand{}, err
	}

	cmd.fallback = true
	return cmd, nil
}

// Validate ensures the command was created through a constructor.
func (c BindTagCommand) Validate() error {
	return c.guard.Validate(ErrBindTagCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c BindTagCommand) OrderID() kernel.UUID {
	return c.orderID
}

// RawCode returns the scanned tag code before normalization.
func (c BindTagCommand) RawCode() string {
	return c.rawCode
}

// TagType returns the raw tag type name.
func (c BindTagCommand) TagType() string {
	return c.tagType
}

// Fallback reports whether this is the lost-tag fallback flow.
func (c BindTagCommand) Fallback() bool {
	return c.fallback
}

// Actor returns who performed the binding.
func (c BindTagCommand) Actor() string {
	return c.actor
}

func (c *BindTagCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *BindTagCommand) setRawCode(rawCode string) error {
	if rawCode == "" {
		return ErrTagCodeIsRequired
	}

	c.rawCode = rawCode
	return nil
}

func (c *BindTagCommand) setActor(actor string) error {
	if actor == "" {
		return ErrActorIsRequired
	}

	c.actor = actor
	return nil
}
