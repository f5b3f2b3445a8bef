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

func TestAdmitOrderCommandHandler_Handle_ExplicitBag(t *testing.T) {
	ctx := t.Context()
	member := newStoredTaggedOrder(t, "TAG000001", 2000, false)
	target := newStoredBag(t, 1)
	cmd, err := commands.NewAdmitOrderCommand(member.ID(), target.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	bagRepo := new(MockBagRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("BagRepository").Return(bagRepo).Once(),
		orderRepo.On("Get", ctx, member.ID()).Return(member, nil).Once(),
		bagRepo.On("Get", ctx, target.ID()).Return(target, nil).Once(),
		bagRepo.On("Update", ctx, target).Return(nil).Once(),
		orderRepo.On("Update", ctx, member).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAdmitOrderCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, bag.PriorityRegular, result.Priority)
	assert.True(t, target.HasMember(member.ID()))
	require.NotNil(t, member.BagID())
	assert.True(t, member.BagID().IsEqual(target.ID()))
	assert.Equal(t, order.SortingInBag, member.SortingStatus())
	uow.AssertExpectations(t)
}

func TestAdmitOrderCommandHandler_Handle_AutoPick(t *testing.T) {
	ctx := t.Context()
	member := newStoredTaggedOrder(t, "TAG000001", 2000, false)
	older := newStoredBag(t, 1)
	newer := newStoredBag(t, 2)
	cmd, err := commands.NewAutoAdmitOrderCommand(member.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	bagRepo := new(MockBagRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("BagRepository").Return(bagRepo).Once(),
		orderRepo.On("Get", ctx, member.ID()).Return(member, nil).Once(),
		bagRepo.On("GetAllFilling", ctx).Return([]*bag.Bag{newer, older}, nil).Once(),
		bagRepo.On("Update", ctx, older).Return(nil).Once(),
		orderRepo.On("Update", ctx, member).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAdmitOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, older.HasMember(member.ID()))
	assert.False(t, newer.HasMember(member.ID()))
}

func TestAdmitOrderCommandHandler_Handle_CapacityExceededRollsBack(t *testing.T) {
	ctx := t.Context()
	member := newStoredTaggedOrder(t, "TAG000001", 8000, false)
	target := newStoredBag(t, 1)
	cmd, err := commands.NewAdmitOrderCommand(member.ID(), target.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	bagRepo := new(MockBagRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("BagRepository").Return(bagRepo).Once(),
		orderRepo.On("Get", ctx, member.ID()).Return(member, nil).Once(),
		bagRepo.On("Get", ctx, target.ID()).Return(target, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAdmitOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, bag.ErrCapacityExceeded)
	assert.Empty(t, target.Members())
	uow.AssertNotCalled(t, "Commit", ctx)
}
