package commands_test

import (
	"context"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/bag"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/services"
	"laundry/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllUncompleted(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllInBag(ctx context.Context, bagID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, bagID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockBagRepository struct{ mock.Mock }

func (m *MockBagRepository) Add(ctx context.Context, b *bag.Bag) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBagRepository) Update(ctx context.Context, b *bag.Bag) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBagRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBagRepository) Get(ctx context.Context, id kernel.UUID) (*bag.Bag, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bag.Bag), args.Error(1)
}

func (m *MockBagRepository) GetAllFilling(ctx context.Context) ([]*bag.Bag, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*bag.Bag), args.Error(1)
}

func (m *MockBagRepository) NextSequence(ctx context.Context, destination bag.Destination) (int, error) {
	args := m.Called(ctx, destination)
	return args.Int(0), args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) BagRepository() ports.BagRepository {
	args := m.Called()
	return args.Get(0).(ports.BagRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOrderUoW struct{ MockUoW }

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockBagUoW struct{ MockUoW }

type MockBagUoWFactory struct{ mock.Mock }

func (m *MockBagUoWFactory) Create() commands.BagUoW {
	args := m.Called()
	return args.Get(0).(commands.BagUoW)
}

type MockMachineStateProvider struct{ mock.Mock }

func (m *MockMachineStateProvider) GetAll(ctx context.Context) ([]services.Machine, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]services.Machine), args.Error(1)
}
