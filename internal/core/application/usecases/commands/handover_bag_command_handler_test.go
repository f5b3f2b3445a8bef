package commands_test

import (
	"testing"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/bag"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func readyBagWithMember(t *testing.T) (*bag.Bag, *order.Order) {
	t.Helper()

	member := newStoredTaggedOrder(t, "TAG000001", 2000, false)
	target := newStoredBag(t, 1)
	_, err := target.Admit(member, fixtureTime)
	require.NoError(t, err)
	require.NoError(t, member.AssignToBag(target.ID(), fixtureTime))
	_, err = target.Finalize(fixtureTime)
	require.NoError(t, err)
	require.NoError(t, member.MarkReadyForPickup("operator", fixtureTime))
	return target, member
}

func TestHandoverBagCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	target, member := readyBagWithMember(t)
	cmd, err := commands.NewHandoverBagCommand(target.ID(), "courier Ivan", []kernel.UUID{member.ID()})
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	bagRepo := new(MockBagRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("BagRepository").Return(bagRepo).Once(),
		bagRepo.On("Get", ctx, target.ID()).Return(target, nil).Once(),
		orderRepo.On("GetAllInBag", ctx, target.ID()).Return([]*order.Order{member}, nil).Once(),
		orderRepo.On("Update", ctx, member).Return(nil).Once(),
		bagRepo.On("Update", ctx, target).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewHandoverBagCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, bag.StatusInTransit, target.Status())
	assert.Equal(t, order.SortingInTransit, member.SortingStatus())
}

func TestHandoverBagCommandHandler_Handle_IncompleteScan(t *testing.T) {
	ctx := t.Context()
	target, _ := readyBagWithMember(t)
	cmd, err := commands.NewHandoverBagCommand(target.ID(), "courier Ivan", nil)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	bagRepo := new(MockBagRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("BagRepository").Return(bagRepo).Once(),
		bagRepo.On("Get", ctx, target.ID()).Return(target, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewHandoverBagCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, bag.ErrIncompleteScan)
	assert.Equal(t, bag.StatusReady, target.Status())
	uow.AssertNotCalled(t, "Commit", ctx)
}
