package commands_test

import (
	"testing"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/bag"
	"laundry/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRemoveOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	member := newStoredTaggedOrder(t, "TAG000001", 2000, false)
	target := newStoredBag(t, 1)
	_, err := target.Admit(member, fixtureTime)
	require.NoError(t, err)
	require.NoError(t, member.AssignToBag(target.ID(), fixtureTime))

	cmd, err := commands.NewRemoveOrderCommand(member.ID(), target.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	bagRepo := new(MockBagRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("BagRepository").Return(bagRepo).Once(),
		bagRepo.On("Get", ctx, target.ID()).Return(target, nil).Once(),
		orderRepo.On("Get", ctx, member.ID()).Return(member, nil).Once(),
		bagRepo.On("Update", ctx, target).Return(nil).Once(),
		orderRepo.On("Update", ctx, member).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRemoveOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.False(t, target.HasMember(member.ID()))
	assert.Nil(t, member.BagID())
	assert.Equal(t, order.SortingPending, member.SortingStatus())
}

func TestRemoveOrderCommandHandler_Handle_LockedBag(t *testing.T) {
	ctx := t.Context()
	target, member := readyBagWithMember(t)
	cmd, err := commands.NewRemoveOrderCommand(member.ID(), target.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	bagRepo := new(MockBagRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("BagRepository").Return(bagRepo).Once(),
		bagRepo.On("Get", ctx, target.ID()).Return(target, nil).Once(),
		orderRepo.On("Get", ctx, member.ID()).Return(member, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRemoveOrderCommandHandler(factory)
	require.ErrorIs(t, h.Handle(ctx, cmd), bag.ErrBagLocked)
}
