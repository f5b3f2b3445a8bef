package commands

import (
	"errors"

	"laundry/internal/pkg/guard"
)

var ErrRecalculateEstimatesCommandIsNotConstructed = errors.New(
	"RecalculateEstimatesCommand must be created via NewRecalculateEstimatesCommand constructor",
)

// RecalculateEstimatesCommand triggers a batch refresh of the ready-time
// estimates of all uncompleted orders against the current machine snapshot.
// This is a parameterless command, typically issued by the scheduler.
type RecalculateEstimatesCommand struct {
	guard guard.ConstructorGuard
}

// NewRecalculateEstimatesCommand creates a new command to refresh estimates.
func NewRecalculateEstimatesCommand() RecalculateEstimatesCommand {
	return RecalculateEstimatesCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *RecalculateEstimatesCommand) Validate() error {
	return c.guard.Validate(
		ErrRecalculateEstimatesCommandIsNotConstructed,
	)
}
