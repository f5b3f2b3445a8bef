package commands_test

import (
	"errors"
	"testing"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/services"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testHours(t *testing.T) services.OperatingHours {
	t.Helper()

	hours, err := services.NewOperatingHours(8, 20)
	require.NoError(t, err)
	return hours
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "walk-in-7", validItems(), "card", "desk 1")
	require.NoError(t, err)

	machines := new(MockMachineStateProvider)
	machines.On("GetAll", ctx).Return([]services.Machine(nil), nil).Once()

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, machines, services.NewCompletionEstimator(), testHours(t))
	require.NoError(t, h.Handle(ctx, cmd))
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
	machines.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateOrderCommand{} // not constructed properly
	factory := new(MockOrderUoWFactory)
	machines := new(MockMachineStateProvider)

	h := commands.NewCreateOrderCommandHandler(factory, machines, services.NewCompletionEstimator(), testHours(t))
	require.Error(t, h.Handle(ctx, cmd))
}

func TestCreateOrderCommandHandler_Handle_UnknownServiceType(t *testing.T) {
	ctx := t.Context()
	items := []commands.OrderItem{{ServiceType: "alchemy", WeightGrams: 1000, Quantity: 1}}
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "walk-in-7", items, "card", "desk 1")
	require.NoError(t, err)

	factory := new(MockOrderUoWFactory)
	machines := new(MockMachineStateProvider)

	h := commands.NewCreateOrderCommandHandler(factory, machines, services.NewCompletionEstimator(), testHours(t))
	require.Error(t, h.Handle(ctx, cmd))
}

func TestCreateOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "walk-in-7", validItems(), "card", "desk 1")
	require.NoError(t, err)

	machines := new(MockMachineStateProvider)
	machines.On("GetAll", ctx).Return([]services.Machine(nil), nil).Once()

	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewCreateOrderCommandHandler(factory, machines, services.NewCompletionEstimator(), testHours(t))
	require.Error(t, h.Handle(ctx, cmd))
}
