package commands_test

import (
	"testing"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/require"
)

func validItems() []commands.OrderItem {
	return []commands.OrderItem{
		{ServiceType: "wash_only", WeightGrams: 2000, Quantity: 2, UnitPriceCents: 1500},
	}
}

func TestNewCreateOrderCommand(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "walk-in-7", validItems(), "card", "desk 1")

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
	})

	t.Run("requires a customer reference", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "", validItems(), "card", "desk 1")

		require.ErrorIs(t, err, commands.ErrCustomerRefIsRequired)
	})

	t.Run("requires items", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "walk-in-7", nil, "card", "desk 1")

		require.ErrorIs(t, err, commands.ErrItemsAreRequired)
	})

	t.Run("requires an actor", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "walk-in-7", validItems(), "card", "")

		require.ErrorIs(t, err, commands.ErrActorIsRequired)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.CreateOrderCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}
