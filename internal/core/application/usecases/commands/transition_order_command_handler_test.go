package commands_test

import (
	"testing"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTransitionOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := newStoredTaggedOrder(t, "TAG000001", 1000, false)
	cmd, err := commands.NewTransitionOrderCommand(aggregate.ID(), "washing", "operator", "batch 3")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		orderRepo.On("Update", ctx, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewTransitionOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.StageWashing, aggregate.CurrentStage())
	assert.Equal(t, order.BusinessStatusProcessing, aggregate.BusinessStatus())
}

func TestTransitionOrderCommandHandler_Handle_IllegalTransition(t *testing.T) {
	ctx := t.Context()
	aggregate := newStoredTaggedOrder(t, "TAG000001", 1000, false)
	cmd, err := commands.NewTransitionOrderCommand(aggregate.ID(), "reception", "operator", "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewTransitionOrderCommandHandler(factory)
	require.ErrorIs(t, h.Handle(ctx, cmd), order.ErrIllegalTransition)
}

func TestTransitionOrderCommandHandler_Handle_UnknownStage(t *testing.T) {
	ctx := t.Context()
	aggregate := newStoredTaggedOrder(t, "TAG000001", 1000, false)
	cmd, err := commands.NewTransitionOrderCommand(aggregate.ID(), "folding", "operator", "")
	require.NoError(t, err)

	factory := new(MockOrderUoWFactory)
	h := commands.NewTransitionOrderCommandHandler(factory)
	require.Error(t, h.Handle(ctx, cmd))
	factory.AssertNotCalled(t, "Create")
}
