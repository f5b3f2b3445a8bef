package commands_test

import (
	"testing"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/bag"
	"laundry/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCreateBagCommand(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		cmd, err := commands.NewCreateBagCommand(kernel.NewUUID(), "regular", "to_facility", 0)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
	})

	t.Run("requires a priority hint", func(t *testing.T) {
		_, err := commands.NewCreateBagCommand(kernel.NewUUID(), "", "to_facility", 0)

		require.ErrorIs(t, err, commands.ErrPriorityHintIsRequired)
	})

	t.Run("requires a destination", func(t *testing.T) {
		_, err := commands.NewCreateBagCommand(kernel.NewUUID(), "regular", "", 0)

		require.ErrorIs(t, err, commands.ErrDestinationIsRequired)
	})
}

func TestCreateBagCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateBagCommand(kernel.NewUUID(), "regular", "to_facility", 0)
	require.NoError(t, err)

	bagRepo := new(MockBagRepository)
	uow := new(MockBagUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BagRepository").Return(bagRepo).Once(),
		bagRepo.On("NextSequence", ctx, bag.DestinationFacility).Return(4, nil).Once(),
		bagRepo.On("Add", mock.Anything, mock.AnythingOfType("*bag.Bag")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBagUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateBagCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	bagRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateBagCommandHandler_Handle_UnknownPriority(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateBagCommand(kernel.NewUUID(), "urgent", "to_facility", 0)
	require.NoError(t, err)

	factory := new(MockBagUoWFactory)
	h := commands.NewCreateBagCommandHandler(factory)
	require.Error(t, h.Handle(ctx, cmd))
}
