package commands_test

import (
	"context"
	"errors"
	"testing"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/menu"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPlaceOrderRepository struct{ mock.Mock }

func (m *MockPlaceOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}
func (m *MockPlaceOrderRepository) Update(_ context.Context, _ *order.Order) error {
	return errors.New("not implemented in mock")
}
func (m *MockPlaceOrderRepository) Get(_ context.Context, _ kernel.ID) (*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}

type MockPlaceOrderMenuRepository struct{ mock.Mock }

func (m *MockPlaceOrderMenuRepository) Add(_ context.Context, _ *menu.Item) error {
	return errors.New("not implemented in mock")
}
func (m *MockPlaceOrderMenuRepository) Update(_ context.Context, _ *menu.Item) error {
	return errors.New("not implemented in mock")
}
func (m *MockPlaceOrderMenuRepository) Get(ctx context.Context, id kernel.ID) (*menu.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*menu.Item), args.Error(1)
}
func (m *MockPlaceOrderMenuRepository) Delete(_ context.Context, _ kernel.ID) error {
	return errors.New("not implemented in mock")
}

type MockPlaceOrderUoW struct{ mock.Mock }

func (m *MockPlaceOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockPlaceOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockPlaceOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockPlaceOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockPlaceOrderUoW) MenuItemRepository() ports.MenuItemRepository {
	args := m.Called()
	return args.Get(0).(ports.MenuItemRepository)
}

type MockPlaceOrderUoWFactory struct{ mock.Mock }

func (m *MockPlaceOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

func placeOrderActor(t *testing.T) *account.User {
	t.Helper()

	actor, err := account.RestoreUser(
		kernel.ID(5), "carol_c", "$2a$12$caroldigest", account.RoleCustomer,
		"Carol", kernel.Phone{}, kernel.Email{}, kernel.ID(0),
	)
	require.NoError(t, err)
	return actor
}

func placeOrderMenuItem(t *testing.T, id, restaurantID kernel.ID, name string, price float64) *menu.Item {
	t.Helper()

	item, err := menu.RestoreItem(id, restaurantID, name, price, "")
	require.NoError(t, err)
	return item
}

func TestPlaceOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewPlaceOrderCommand(
		kernel.ID(5), kernel.ID(20), "1 Main Street, Springfield", "ring twice",
		[]commands.OrderLine{
			{MenuItemID: kernel.ID(301), Quantity: 2},
			{MenuItemID: kernel.ID(302), Quantity: 1},
		},
	)
	require.NoError(t, err)

	orders := new(MockPlaceOrderRepository)
	menuItems := new(MockPlaceOrderMenuRepository)
	uow := new(MockPlaceOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MenuItemRepository").Return(menuItems).Once(),
		menuItems.On("Get", ctx, kernel.ID(301)).
			Return(placeOrderMenuItem(t, kernel.ID(301), kernel.ID(20), "Margherita", 9.5), nil).Once(),
		menuItems.On("Get", ctx, kernel.ID(302)).
			Return(placeOrderMenuItem(t, kernel.ID(302), kernel.ID(20), "Tiramisu", 6.0), nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPlaceOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceOrderCommandHandler(factory)
	placed, err := h.Handle(ctx, placeOrderActor(t), cmd)

	require.NoError(t, err)
	require.Equal(t, order.StatusPlaced, placed.Status())
	require.Len(t, placed.Items(), 2)
	require.Equal(t, "Margherita", placed.Items()[0].MenuItemName())
	require.InDelta(t, 9.5, placed.Items()[0].UnitPrice(), 0.001)
	require.Equal(t, 2, placed.Items()[0].Quantity())
	orders.AssertExpectations(t)
	menuItems.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_MenuItemFromOtherRestaurant(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewPlaceOrderCommand(
		kernel.ID(5), kernel.ID(20), "1 Main Street, Springfield", "",
		[]commands.OrderLine{{MenuItemID: kernel.ID(301), Quantity: 1}},
	)
	require.NoError(t, err)

	orders := new(MockPlaceOrderRepository)
	menuItems := new(MockPlaceOrderMenuRepository)
	uow := new(MockPlaceOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MenuItemRepository").Return(menuItems).Once(),
		menuItems.On("Get", ctx, kernel.ID(301)).
			Return(placeOrderMenuItem(t, kernel.ID(301), kernel.ID(99), "Margherita", 9.5), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPlaceOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceOrderCommandHandler(factory)
	placed, err := h.Handle(ctx, placeOrderActor(t), cmd)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	require.Nil(t, placed)
	orders.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_MenuItemNotFound(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewPlaceOrderCommand(
		kernel.ID(5), kernel.ID(20), "1 Main Street, Springfield", "",
		[]commands.OrderLine{{MenuItemID: kernel.ID(301), Quantity: 1}},
	)
	require.NoError(t, err)

	menuItems := new(MockPlaceOrderMenuRepository)
	uow := new(MockPlaceOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MenuItemRepository").Return(menuItems).Once(),
		menuItems.On("Get", ctx, kernel.ID(301)).
			Return(nil, errs.NewObjectNotFoundError("menuItemId", 301)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPlaceOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceOrderCommandHandler(factory)
	_, err = h.Handle(ctx, placeOrderActor(t), cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_NilActor(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewPlaceOrderCommand(
		kernel.ID(5), kernel.ID(20), "1 Main Street, Springfield", "",
		[]commands.OrderLine{{MenuItemID: kernel.ID(301), Quantity: 1}},
	)
	require.NoError(t, err)

	factory := new(MockPlaceOrderUoWFactory)

	h := commands.NewPlaceOrderCommandHandler(factory)
	_, err = h.Handle(ctx, nil, cmd)

	require.ErrorIs(t, err, errs.ErrUnauthorized)
	factory.AssertNotCalled(t, "Create")
}

func TestNewPlaceOrderCommand_Invalid(t *testing.T) {
	lines := []commands.OrderLine{{MenuItemID: kernel.ID(301), Quantity: 1}}

	_, err := commands.NewPlaceOrderCommand(kernel.ID(0), kernel.ID(20), "1 Main Street", "", lines)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewPlaceOrderCommand(kernel.ID(5), kernel.ID(20), "", "", lines)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewPlaceOrderCommand(kernel.ID(5), kernel.ID(20), "1 Main Street", "",
		[]commands.OrderLine{{MenuItemID: kernel.ID(301), Quantity: 0}})
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}
