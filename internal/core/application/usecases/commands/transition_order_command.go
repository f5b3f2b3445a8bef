package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var (
	ErrTransitionOrderCommandIsNotConstructed = errors.New(
		"TransitionOrderCommand must be created via NewTransitionOrderCommand constructor",
	)
	ErrTargetStageIsRequired = errors.New("target stage is required")
)

// TransitionOrderCommand represents a request to move an order to a later
// stage of its service-type sequence.
type TransitionOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	targetStage string
	actor       string
	note        string

	guard guard.ConstructorGuard
}

// NewTransitionOrderCommand creates a command to advance an order's stage.
// The note is optional free text for the workflow log.
func NewTransitionOrderCommand(orderID kernel.UUID, targetStage, actor, note string) (TransitionOrderCommand, error) {
	cmd := TransitionOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTargetStage(targetStage),
		cmd.setActor(actor),
	); err != nil {
		return TransitionOrderCommand{}, err
	}

	cmd.note = note
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c TransitionOrderCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOrderCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c TransitionOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// TargetStage returns the raw target stage name.
func (c TransitionOrderCommand) TargetStage() string {
	return c.targetStage
}

// Actor returns who requested the transition.
func (c TransitionOrderCommand) Actor() string {
	return c.actor
}

// Note returns the optional log note.
func (c TransitionOrderCommand) Note() string {
	return c.note
}

func (c *TransitionOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *TransitionOrderCommand) setTargetStage(targetStage string) error {
	if targetStage == "" {
		return ErrTargetStageIsRequired
	}

	c.targetStage = targetStage
	return nil
}

func (c *TransitionOrderCommand) setActor(actor string) error {
	if actor == "" {
		return ErrActorIsRequired
	}

	c.actor = actor
	return nil
}
