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

type MockAcceptOrderRepository struct{ mock.Mock }

func (m *MockAcceptOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockAcceptOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockAcceptOrderRepository) GetByCustomerToken(
	ctx context.Context, token kernel.CustomerToken,
) (*order.Order, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockAcceptOrderRepository) UpdateInStatus(
	ctx context.Context, o *order.Order, expected order.Status,
) error {
	args := m.Called(ctx, o, expected)
	return args.Error(0)
}

func (m *MockAcceptOrderRepository) GetAllActive(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockAcceptOrderUoW struct{ mock.Mock }

func (m *MockAcceptOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAcceptOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAcceptOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAcceptOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockAcceptOrderUoWFactory struct{ mock.Mock }

func (m *MockAcceptOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

func TestAcceptOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := makeOrder(t)
	cmd, err := commands.NewAcceptOrderCommand(aggregate.ID(), testOperator(), "looks printable")
	require.NoError(t, err)

	repo := new(MockAcceptOrderRepository)
	uow := new(MockAcceptOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("UpdateInStatus", ctx, aggregate, order.New).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAcceptOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAcceptOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.AwaitingPrice, aggregate.Status())
	assert.Equal(t, "looks printable", aggregate.OperatorNote())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAcceptOrderCommandHandler_Handle_InvalidTransition(t *testing.T) {
	ctx := t.Context()
	aggregate := makeOrderInStatus(t, order.Rejected)
	cmd, err := commands.NewAcceptOrderCommand(aggregate.ID(), testOperator(), "")
	require.NoError(t, err)

	repo := new(MockAcceptOrderRepository)
	uow := new(MockAcceptOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAcceptOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAcceptOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	repo.AssertNotCalled(t, "UpdateInStatus", mock.Anything, mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestAcceptOrderCommandHandler_Handle_ConcurrentModification(t *testing.T) {
	ctx := t.Context()
	aggregate := makeOrder(t)
	cmd, err := commands.NewAcceptOrderCommand(aggregate.ID(), testOperator(), "")
	require.NoError(t, err)

	repo := new(MockAcceptOrderRepository)
	uow := new(MockAcceptOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("UpdateInStatus", ctx, aggregate, order.New).
			Return(errs.NewConcurrentModificationError("orderID", aggregate.ID())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAcceptOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAcceptOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrConcurrentModification)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestAcceptOrderCommandHandler_Handle_NotConstructedCommand(t *testing.T) {
	factory := new(MockAcceptOrderUoWFactory)
	h := commands.NewAcceptOrderCommandHandler(factory)

	err := h.Handle(t.Context(), commands.AcceptOrderCommand{})

	require.ErrorIs(t, err, commands.ErrAcceptOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestNewAcceptOrderCommand_UnauthenticatedOperator(t *testing.T) {
	_, err := commands.NewAcceptOrderCommand(kernel.NewUUID(), ports.Operator{}, "")
	require.ErrorIs(t, err, errs.ErrUnauthorized)
}
