package commands_test

import (
	"context"
	"testing"

	"github.com/arrows94/3d-order-manager/internal/core/application/usecases/commands"
	"github.com/arrows94/3d-order-manager/internal/core/domain/model/kernel"
	"github.com/arrows94/3d-order-manager/internal/core/domain/model/order"
	"github.com/arrows94/3d-order-manager/internal/core/ports"
	"github.com/arrows94/3d-order-manager/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCompleteOrderRepository struct{ mock.Mock }

func (m *MockCompleteOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockCompleteOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockCompleteOrderRepository) GetByCustomerToken(
	ctx context.Context, token kernel.CustomerToken,
) (*order.Order, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockCompleteOrderRepository) UpdateInStatus(
	ctx context.Context, o *order.Order, expected order.Status,
) error {
	args := m.Called(ctx, o, expected)
	return args.Error(0)
}

func (m *MockCompleteOrderRepository) GetAllActive(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockCompleteOrderUoW struct{ mock.Mock }

func (m *MockCompleteOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCompleteOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCompleteOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCompleteOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockCompleteOrderUoWFactory struct{ mock.Mock }

func (m *MockCompleteOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

func TestCompleteOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := makeOrderInStatus(t, order.PriceAccepted)
	cmd, err := commands.NewCompleteOrderCommand(aggregate.ID(), testOperator())
	require.NoError(t, err)

	repo := new(MockCompleteOrderRepository)
	uow := new(MockCompleteOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("UpdateInStatus", ctx, aggregate, order.PriceAccepted).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCompleteOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Completed, aggregate.Status())
	assert.True(t, aggregate.Status().IsTerminal())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCompleteOrderCommandHandler_Handle_PriceNotAcceptedYet(t *testing.T) {
	ctx := t.Context()
	aggregate := makeOrderInStatus(t, order.PriceSent)
	cmd, err := commands.NewCompleteOrderCommand(aggregate.ID(), testOperator())
	require.NoError(t, err)

	repo := new(MockCompleteOrderRepository)
	uow := new(MockCompleteOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCompleteOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Equal(t, order.PriceSent, aggregate.Status())
	repo.AssertNotCalled(t, "UpdateInStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestNewCompleteOrderCommand_UnauthenticatedOperator(t *testing.T) {
	_, err := commands.NewCompleteOrderCommand(kernel.NewUUID(), ports.Operator{})
	require.ErrorIs(t, err, errs.ErrUnauthorized)
}
