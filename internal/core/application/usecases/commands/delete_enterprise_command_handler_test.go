package commands_test

import (
	"context"
	"errors"
	"testing"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/tenant"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDeleteEnterpriseRepository struct{ mock.Mock }

func (m *MockDeleteEnterpriseRepository) Add(_ context.Context, _ *tenant.Enterprise) error {
	return errors.New("not implemented in mock")
}
func (m *MockDeleteEnterpriseRepository) Update(_ context.Context, _ *tenant.Enterprise) error {
	return errors.New("not implemented in mock")
}
func (m *MockDeleteEnterpriseRepository) Get(_ context.Context, _ kernel.ID) (*tenant.Enterprise, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockDeleteEnterpriseRepository) Delete(ctx context.Context, id kernel.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockDeleteEnterpriseUoW struct{ mock.Mock }

func (m *MockDeleteEnterpriseUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockDeleteEnterpriseUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockDeleteEnterpriseUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockDeleteEnterpriseUoW) EnterpriseRepository() ports.EnterpriseRepository {
	args := m.Called()
	return args.Get(0).(ports.EnterpriseRepository)
}
func (m *MockDeleteEnterpriseUoW) OrganizationRepository() ports.OrganizationRepository { return nil }

type MockDeleteEnterpriseUoWFactory struct{ mock.Mock }

func (m *MockDeleteEnterpriseUoWFactory) Create() commands.TenantUoW {
	args := m.Called()
	return args.Get(0).(commands.TenantUoW)
}

type MockDependentCounter struct{ mock.Mock }

func (m *MockDependentCounter) CountOrganizationsByEnterprise(ctx context.Context, enterpriseID kernel.ID) (int64, error) {
	args := m.Called(ctx, enterpriseID)
	return args.Get(0).(int64), args.Error(1)
}

func deleteEnterpriseActor(t *testing.T, role account.Role) *account.User {
	t.Helper()

	actor, err := account.RestoreUser(
		kernel.ID(1), "root_admin", "$2a$12$rootdigest", role,
		"Root", kernel.Phone{}, kernel.Email{}, kernel.ID(0),
	)
	require.NoError(t, err)
	return actor
}

func TestDeleteEnterpriseCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewDeleteEnterpriseCommand(kernel.ID(7))
	require.NoError(t, err)

	dependents := new(MockDependentCounter)
	dependents.On("CountOrganizationsByEnterprise", ctx, kernel.ID(7)).Return(int64(0), nil).Once()

	enterprises := new(MockDeleteEnterpriseRepository)
	uow := new(MockDeleteEnterpriseUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("EnterpriseRepository").Return(enterprises).Once(),
		enterprises.On("Delete", ctx, kernel.ID(7)).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeleteEnterpriseUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteEnterpriseCommandHandler(factory, dependents)
	err = h.Handle(ctx, deleteEnterpriseActor(t, account.RoleSystemAdmin), cmd)

	require.NoError(t, err)
	enterprises.AssertExpectations(t)
	uow.AssertExpectations(t)
	dependents.AssertExpectations(t)
}

func TestDeleteEnterpriseCommandHandler_Handle_RefusedWhileDependentsExist(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewDeleteEnterpriseCommand(kernel.ID(7))
	require.NoError(t, err)

	dependents := new(MockDependentCounter)
	dependents.On("CountOrganizationsByEnterprise", ctx, kernel.ID(7)).Return(int64(3), nil).Once()

	factory := new(MockDeleteEnterpriseUoWFactory)

	h := commands.NewDeleteEnterpriseCommandHandler(factory, dependents)
	err = h.Handle(ctx, deleteEnterpriseActor(t, account.RoleSystemAdmin), cmd)

	require.ErrorIs(t, err, commands.ErrEnterpriseHasDependents)
	factory.AssertNotCalled(t, "Create")
	dependents.AssertExpectations(t)
}

func TestDeleteEnterpriseCommandHandler_Handle_NonSystemAdminDenied(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewDeleteEnterpriseCommand(kernel.ID(7))
	require.NoError(t, err)

	dependents := new(MockDependentCounter)
	factory := new(MockDeleteEnterpriseUoWFactory)

	h := commands.NewDeleteEnterpriseCommandHandler(factory, dependents)
	err = h.Handle(ctx, deleteEnterpriseActor(t, account.RoleEnterpriseAdmin), cmd)

	require.ErrorIs(t, err, errs.ErrUnauthorized)
	dependents.AssertNotCalled(t, "CountOrganizationsByEnterprise", mock.Anything, mock.Anything)
	factory.AssertNotCalled(t, "Create")
}

func TestDeleteEnterpriseCommandHandler_Handle_AbsentEnterpriseIsNoOp(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewDeleteEnterpriseCommand(kernel.ID(7))
	require.NoError(t, err)

	dependents := new(MockDependentCounter)
	dependents.On("CountOrganizationsByEnterprise", ctx, kernel.ID(7)).Return(int64(0), nil).Once()

	enterprises := new(MockDeleteEnterpriseRepository)
	uow := new(MockDeleteEnterpriseUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("EnterpriseRepository").Return(enterprises).Once(),
		enterprises.On("Delete", ctx, kernel.ID(7)).
			Return(errs.NewObjectNotFoundError("enterpriseId", 7)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeleteEnterpriseUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteEnterpriseCommandHandler(factory, dependents)
	err = h.Handle(ctx, deleteEnterpriseActor(t, account.RoleSystemAdmin), cmd)

	require.NoError(t, err)
	uow.AssertExpectations(t)
}
