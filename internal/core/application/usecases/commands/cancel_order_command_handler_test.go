package commands_test

import (
	"testing"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelOrderCommandHandler_Handle_Allowed(t *testing.T) {
	ctx := t.Context()
	aggregate := newStoredOrder(t, 1000, false)
	cmd, err := commands.NewCancelOrderCommand(aggregate.ID(), "operator", "customer request", false)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		orderRepo.On("Update", ctx, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	assert.Equal(t, order.BusinessStatusCancelled, aggregate.BusinessStatus())
}

func TestCancelOrderCommandHandler_Handle_InBagWithApproval(t *testing.T) {
	ctx := t.Context()
	member := newStoredTaggedOrder(t, "TAG000001", 2000, false)
	memberBag := newStoredBag(t, 1)
	_, err := memberBag.Admit(member, fixtureTime)
	require.NoError(t, err)
	require.NoError(t, member.AssignToBag(memberBag.ID(), fixtureTime))

	cmd, err := commands.NewCancelOrderCommand(member.ID(), "operator", "customer request", true)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	bagRepo := new(MockBagRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, member.ID()).Return(member, nil).Once(),
		uow.On("BagRepository").Return(bagRepo).Once(),
		bagRepo.On("Get", ctx, memberBag.ID()).Return(memberBag, nil).Once(),
		bagRepo.On("Update", ctx, memberBag).Return(nil).Once(),
		orderRepo.On("Update", ctx, member).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.BusinessStatusCancelled, member.BusinessStatus())
	assert.Nil(t, member.BagID())
	assert.False(t, memberBag.HasMember(member.ID()))
	assert.Equal(t, int64(0), memberBag.TotalWeight().Grams())
}

func TestCancelOrderCommandHandler_Handle_ApprovalRequired(t *testing.T) {
	ctx := t.Context()
	member := newStoredTaggedOrder(t, "TAG000001", 2000, false)
	memberBag := newStoredBag(t, 1)
	_, err := memberBag.Admit(member, fixtureTime)
	require.NoError(t, err)
	require.NoError(t, member.AssignToBag(memberBag.ID(), fixtureTime))

	cmd, err := commands.NewCancelOrderCommand(member.ID(), "operator", "", false)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, member.ID()).Return(member, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, services.ErrApprovalRequired)
	assert.True(t, memberBag.HasMember(member.ID()))
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestCancelOrderCommandHandler_Handle_Forbidden(t *testing.T) {
	ctx := t.Context()
	aggregate := newStoredTaggedOrder(t, "TAG000001", 2000, false)
	require.NoError(t, aggregate.TransitionTo(order.StageWashing, "operator", "", fixtureTime))

	cmd, err := commands.NewCancelOrderCommand(aggregate.ID(), "operator", "", true)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, services.ErrCancellationForbidden)
}
