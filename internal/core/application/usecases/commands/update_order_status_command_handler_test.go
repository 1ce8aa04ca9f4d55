package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderStatusRepository struct{ mock.Mock }

func (m *MockOrderStatusRepository) Add(_ context.Context, _ *order.Order) error {
	return errors.New("not implemented in mock")
}
func (m *MockOrderStatusRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}
func (m *MockOrderStatusRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockOrderStatusUoW struct{ mock.Mock }

func (m *MockOrderStatusUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderStatusUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderStatusUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderStatusUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockOrderStatusUoW) MenuItemRepository() ports.MenuItemRepository { return nil }

type MockOrderStatusUoWFactory struct{ mock.Mock }

func (m *MockOrderStatusUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

func orderStatusActor(t *testing.T) *account.User {
	t.Helper()

	actor, err := account.RestoreUser(
		kernel.ID(3), "mark_m", "$2a$12$markdigest", account.RoleManager,
		"Mark", kernel.Phone{}, kernel.Email{}, kernel.ID(20),
	)
	require.NoError(t, err)
	return actor
}

func orderInStatus(t *testing.T, status order.Status) *order.Order {
	t.Helper()

	aggregate, err := order.RestoreOrder(
		kernel.ID(500), kernel.ID(5), kernel.ID(20), nil, status,
		time.Now().UTC(), "1 Main Street, Springfield", "",
	)
	require.NoError(t, err)
	return aggregate
}

func TestUpdateOrderStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewUpdateOrderStatusCommand(kernel.ID(500), order.StatusAccepted, kernel.ID(0))
	require.NoError(t, err)

	stored := orderInStatus(t, order.StatusPlaced)
	orders := new(MockOrderStatusRepository)
	uow := new(MockOrderStatusUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("Get", ctx, kernel.ID(500)).Return(stored, nil).Once(),
		orders.On("Update", ctx, stored).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderStatusUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory)
	err = h.Handle(ctx, orderStatusActor(t), cmd)

	require.NoError(t, err)
	require.Equal(t, order.StatusAccepted, stored.Status())
	orders.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_StatusJumpRejected(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewUpdateOrderStatusCommand(kernel.ID(500), order.StatusDelivered, kernel.ID(0))
	require.NoError(t, err)

	stored := orderInStatus(t, order.StatusPlaced)
	orders := new(MockOrderStatusRepository)
	uow := new(MockOrderStatusUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("Get", ctx, kernel.ID(500)).Return(stored, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderStatusUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory)
	err = h.Handle(ctx, orderStatusActor(t), cmd)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	require.Equal(t, order.StatusPlaced, stored.Status())
	orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_OutForDeliveryRequiresAssignment(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewUpdateOrderStatusCommand(kernel.ID(500), order.StatusOutForDelivery, kernel.ID(0))
	require.NoError(t, err)

	stored := orderInStatus(t, order.StatusReadyForPickup)
	orders := new(MockOrderStatusRepository)
	uow := new(MockOrderStatusUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("Get", ctx, kernel.ID(500)).Return(stored, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderStatusUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory)
	err = h.Handle(ctx, orderStatusActor(t), cmd)

	require.ErrorIs(t, err, order.ErrDeliveryManRequired)
	orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateOrderStatusCommandHandler_Handle_OutForDeliveryWithAssignment(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewUpdateOrderStatusCommand(kernel.ID(500), order.StatusOutForDelivery, kernel.ID(77))
	require.NoError(t, err)

	stored := orderInStatus(t, order.StatusReadyForPickup)
	orders := new(MockOrderStatusRepository)
	uow := new(MockOrderStatusUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("Get", ctx, kernel.ID(500)).Return(stored, nil).Once(),
		orders.On("Update", ctx, stored).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderStatusUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory)
	err = h.Handle(ctx, orderStatusActor(t), cmd)

	require.NoError(t, err)
	require.Equal(t, order.StatusOutForDelivery, stored.Status())
	require.NotNil(t, stored.DeliveryManID())
	require.Equal(t, kernel.ID(77), *stored.DeliveryManID())
	uow.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewUpdateOrderStatusCommand(kernel.ID(500), order.StatusAccepted, kernel.ID(0))
	require.NoError(t, err)

	orders := new(MockOrderStatusRepository)
	uow := new(MockOrderStatusUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("Get", ctx, kernel.ID(500)).
			Return(nil, errs.NewObjectNotFoundError("orderId", 500)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderStatusUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory)
	err = h.Handle(ctx, orderStatusActor(t), cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestNewUpdateOrderStatusCommand_Invalid(t *testing.T) {
	_, err := commands.NewUpdateOrderStatusCommand(kernel.ID(0), order.StatusAccepted, kernel.ID(0))
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewUpdateOrderStatusCommand(kernel.ID(500), order.StatusUnknown, kernel.ID(0))
	require.Error(t, err)
}
