package commands_test

import (
	"context"
	"errors"
	"testing"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/tenant"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCreateUserRepository struct{ mock.Mock }

func (m *MockCreateUserRepository) Add(ctx context.Context, aggregate *account.User) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}
func (m *MockCreateUserRepository) Update(_ context.Context, _ *account.User) error {
	return errors.New("not implemented in mock")
}
func (m *MockCreateUserRepository) UpdateCredential(_ context.Context, _ kernel.ID, _ string) error {
	return errors.New("not implemented in mock")
}
func (m *MockCreateUserRepository) Get(_ context.Context, _ kernel.ID) (*account.User, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockCreateUserRepository) FindByUsername(ctx context.Context, username string) (*account.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.User), args.Error(1)
}
func (m *MockCreateUserRepository) Delete(_ context.Context, _ kernel.ID) error {
	return errors.New("not implemented in mock")
}

type MockCreateUserOrgRepository struct{ mock.Mock }

func (m *MockCreateUserOrgRepository) Add(_ context.Context, _ *tenant.Organization) error {
	return errors.New("not implemented in mock")
}
func (m *MockCreateUserOrgRepository) Update(_ context.Context, _ *tenant.Organization) error {
	return errors.New("not implemented in mock")
}
func (m *MockCreateUserOrgRepository) Get(ctx context.Context, id kernel.ID) (*tenant.Organization, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tenant.Organization), args.Error(1)
}
func (m *MockCreateUserOrgRepository) Delete(_ context.Context, _ kernel.ID) error {
	return errors.New("not implemented in mock")
}

type MockCreateUserUoW struct{ mock.Mock }

func (m *MockCreateUserUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCreateUserUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCreateUserUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCreateUserUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}
func (m *MockCreateUserUoW) OrganizationRepository() ports.OrganizationRepository {
	args := m.Called()
	return args.Get(0).(ports.OrganizationRepository)
}

type MockCreateUserUoWFactory struct{ mock.Mock }

func (m *MockCreateUserUoWFactory) Create() commands.UserUoW {
	args := m.Called()
	return args.Get(0).(commands.UserUoW)
}

type MockCreateUserHasher struct{ mock.Mock }

func (m *MockCreateUserHasher) Hash(secret string) (string, error) {
	args := m.Called(secret)
	return args.String(0), args.Error(1)
}
func (m *MockCreateUserHasher) IsHashed(stored string) bool {
	args := m.Called(stored)
	return args.Bool(0)
}
func (m *MockCreateUserHasher) Verify(secret, digest string) bool {
	args := m.Called(secret, digest)
	return args.Bool(0)
}

func createUserActor(t *testing.T, role account.Role, organizationID kernel.ID) *account.User {
	t.Helper()

	actor, err := account.RestoreUser(
		kernel.ID(1), "acting_admin", "$2a$12$actordigest", role,
		"Acting Admin", kernel.Phone{}, kernel.Email{}, organizationID,
	)
	require.NoError(t, err)
	return actor
}

func createUserOrg(t *testing.T, id, enterpriseID kernel.ID) *tenant.Organization {
	t.Helper()

	organization, err := tenant.RestoreOrganization(id, "Pronto Downtown", "restaurant", enterpriseID)
	require.NoError(t, err)
	return organization
}

func TestCreateUserCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	actor := createUserActor(t, account.RoleSystemAdmin, kernel.ID(0))
	cmd, err := commands.NewCreateUserCommand(
		"bob_builder", "s3cret1", account.RoleCustomer, "Bob", "", "", kernel.ID(0),
	)
	require.NoError(t, err)

	users := new(MockCreateUserRepository)
	organizations := new(MockCreateUserOrgRepository)
	uow := new(MockCreateUserUoW)
	hasher := new(MockCreateUserHasher)
	hasher.On("Hash", "s3cret1").Return("$2a$12$bobdigest", nil).Once()
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(users).Once(),
		uow.On("OrganizationRepository").Return(organizations).Once(),
		users.On("FindByUsername", ctx, "bob_builder").
			Return(nil, errs.NewObjectNotFoundError("username", "bob_builder")).Once(),
		users.On("Add", ctx, mock.AnythingOfType("*account.User")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateUserCommandHandler(factory, hasher, services.NewAuthorizer())
	created, err := h.Handle(ctx, actor, cmd)

	require.NoError(t, err)
	require.Equal(t, "bob_builder", created.Username())
	require.Equal(t, "$2a$12$bobdigest", created.Credential())
	users.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
	hasher.AssertExpectations(t)
}

func TestCreateUserCommandHandler_Handle_DuplicateUsername(t *testing.T) {
	ctx := context.Background()
	actor := createUserActor(t, account.RoleSystemAdmin, kernel.ID(0))
	cmd, err := commands.NewCreateUserCommand(
		"bob_builder", "s3cret1", account.RoleCustomer, "Bob", "", "", kernel.ID(0),
	)
	require.NoError(t, err)

	existing := createUserActor(t, account.RoleCustomer, kernel.ID(0))
	users := new(MockCreateUserRepository)
	organizations := new(MockCreateUserOrgRepository)
	uow := new(MockCreateUserUoW)
	hasher := new(MockCreateUserHasher)
	hasher.On("Hash", "s3cret1").Return("$2a$12$bobdigest", nil).Once()
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(users).Once(),
		uow.On("OrganizationRepository").Return(organizations).Once(),
		users.On("FindByUsername", ctx, "bob_builder").Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateUserCommandHandler(factory, hasher, services.NewAuthorizer())
	created, err := h.Handle(ctx, actor, cmd)

	require.ErrorIs(t, err, commands.ErrUsernameAlreadyExists)
	require.Nil(t, created)
	users.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestCreateUserCommandHandler_Handle_EnterpriseAdminInsideScope(t *testing.T) {
	ctx := context.Background()
	actor := createUserActor(t, account.RoleEnterpriseAdmin, kernel.ID(100))
	cmd, err := commands.NewCreateUserCommand(
		"bob_builder", "s3cret1", account.RoleManager, "Bob", "", "", kernel.ID(200),
	)
	require.NoError(t, err)

	users := new(MockCreateUserRepository)
	organizations := new(MockCreateUserOrgRepository)
	uow := new(MockCreateUserUoW)
	hasher := new(MockCreateUserHasher)
	hasher.On("Hash", "s3cret1").Return("$2a$12$bobdigest", nil).Once()
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(users).Once(),
		uow.On("OrganizationRepository").Return(organizations).Once(),
		organizations.On("Get", ctx, kernel.ID(100)).
			Return(createUserOrg(t, kernel.ID(100), kernel.ID(7)), nil).Once(),
		organizations.On("Get", ctx, kernel.ID(200)).
			Return(createUserOrg(t, kernel.ID(200), kernel.ID(7)), nil).Once(),
		users.On("FindByUsername", ctx, "bob_builder").
			Return(nil, errs.NewObjectNotFoundError("username", "bob_builder")).Once(),
		users.On("Add", ctx, mock.AnythingOfType("*account.User")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateUserCommandHandler(factory, hasher, services.NewAuthorizer())
	created, err := h.Handle(ctx, actor, cmd)

	require.NoError(t, err)
	require.Equal(t, kernel.ID(200), created.OrganizationID())
	users.AssertExpectations(t)
	organizations.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateUserCommandHandler_Handle_EnterpriseAdminOutsideScope(t *testing.T) {
	ctx := context.Background()
	actor := createUserActor(t, account.RoleEnterpriseAdmin, kernel.ID(100))
	cmd, err := commands.NewCreateUserCommand(
		"bob_builder", "s3cret1", account.RoleManager, "Bob", "", "", kernel.ID(200),
	)
	require.NoError(t, err)

	users := new(MockCreateUserRepository)
	organizations := new(MockCreateUserOrgRepository)
	uow := new(MockCreateUserUoW)
	hasher := new(MockCreateUserHasher)
	hasher.On("Hash", "s3cret1").Return("$2a$12$bobdigest", nil).Once()
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(users).Once(),
		uow.On("OrganizationRepository").Return(organizations).Once(),
		organizations.On("Get", ctx, kernel.ID(100)).
			Return(createUserOrg(t, kernel.ID(100), kernel.ID(7)), nil).Once(),
		organizations.On("Get", ctx, kernel.ID(200)).
			Return(createUserOrg(t, kernel.ID(200), kernel.ID(8)), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateUserCommandHandler(factory, hasher, services.NewAuthorizer())
	created, err := h.Handle(ctx, actor, cmd)

	require.ErrorIs(t, err, errs.ErrUnauthorized)
	require.Nil(t, created)
	users.AssertNotCalled(t, "FindByUsername", mock.Anything, mock.Anything)
	users.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

// A denied actor must get the same answer whether or not the username is
// taken, so the uniqueness lookup never runs for them.
func TestCreateUserCommandHandler_Handle_DeniedActorDoesNotLearnTakenUsername(t *testing.T) {
	ctx := context.Background()
	actor := createUserActor(t, account.RoleEnterpriseAdmin, kernel.ID(100))
	cmd, err := commands.NewCreateUserCommand(
		"acting_admin", "s3cret1", account.RoleManager, "Bob", "", "", kernel.ID(200),
	)
	require.NoError(t, err)

	users := new(MockCreateUserRepository)
	organizations := new(MockCreateUserOrgRepository)
	uow := new(MockCreateUserUoW)
	hasher := new(MockCreateUserHasher)
	hasher.On("Hash", "s3cret1").Return("$2a$12$bobdigest", nil).Once()
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(users).Once(),
		uow.On("OrganizationRepository").Return(organizations).Once(),
		organizations.On("Get", ctx, kernel.ID(100)).
			Return(createUserOrg(t, kernel.ID(100), kernel.ID(7)), nil).Once(),
		organizations.On("Get", ctx, kernel.ID(200)).
			Return(createUserOrg(t, kernel.ID(200), kernel.ID(8)), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateUserCommandHandler(factory, hasher, services.NewAuthorizer())
	created, err := h.Handle(ctx, actor, cmd)

	require.ErrorIs(t, err, errs.ErrUnauthorized)
	require.NotErrorIs(t, err, commands.ErrUsernameAlreadyExists)
	require.Nil(t, created)
	users.AssertNotCalled(t, "FindByUsername", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

// A vanished organization must deny an EnterpriseAdmin rather than widen
// their reach: the broken reference resolves to "no tenant" and the scope
// comparison fails.
func TestCreateUserCommandHandler_Handle_DanglingOrganizationDenies(t *testing.T) {
	ctx := context.Background()
	actor := createUserActor(t, account.RoleEnterpriseAdmin, kernel.ID(100))
	cmd, err := commands.NewCreateUserCommand(
		"bob_builder", "s3cret1", account.RoleManager, "Bob", "", "", kernel.ID(200),
	)
	require.NoError(t, err)

	users := new(MockCreateUserRepository)
	organizations := new(MockCreateUserOrgRepository)
	uow := new(MockCreateUserUoW)
	hasher := new(MockCreateUserHasher)
	hasher.On("Hash", "s3cret1").Return("$2a$12$bobdigest", nil).Once()
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(users).Once(),
		uow.On("OrganizationRepository").Return(organizations).Once(),
		organizations.On("Get", ctx, kernel.ID(100)).
			Return(nil, errs.NewObjectNotFoundError("organization", 100)).Once(),
		organizations.On("Get", ctx, kernel.ID(200)).
			Return(createUserOrg(t, kernel.ID(200), kernel.ID(8)), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateUserCommandHandler(factory, hasher, services.NewAuthorizer())
	_, err = h.Handle(ctx, actor, cmd)

	require.ErrorIs(t, err, errs.ErrUnauthorized)
	users.AssertNotCalled(t, "FindByUsername", mock.Anything, mock.Anything)
	users.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestCreateUserCommandHandler_Handle_CustomerActorDenied(t *testing.T) {
	ctx := context.Background()
	actor := createUserActor(t, account.RoleCustomer, kernel.ID(0))
	cmd, err := commands.NewCreateUserCommand(
		"bob_builder", "s3cret1", account.RoleCustomer, "Bob", "", "", kernel.ID(0),
	)
	require.NoError(t, err)

	users := new(MockCreateUserRepository)
	organizations := new(MockCreateUserOrgRepository)
	uow := new(MockCreateUserUoW)
	hasher := new(MockCreateUserHasher)
	hasher.On("Hash", "s3cret1").Return("$2a$12$bobdigest", nil).Once()
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(users).Once(),
		uow.On("OrganizationRepository").Return(organizations).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateUserCommandHandler(factory, hasher, services.NewAuthorizer())
	_, err = h.Handle(ctx, actor, cmd)

	require.ErrorIs(t, err, errs.ErrUnauthorized)
	users.AssertNotCalled(t, "FindByUsername", mock.Anything, mock.Anything)
	users.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestCreateUserCommandHandler_Handle_NilActor(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewCreateUserCommand(
		"bob_builder", "s3cret1", account.RoleCustomer, "Bob", "", "", kernel.ID(0),
	)
	require.NoError(t, err)

	factory := new(MockCreateUserUoWFactory)
	hasher := new(MockCreateUserHasher)

	h := commands.NewCreateUserCommandHandler(factory, hasher, services.NewAuthorizer())
	_, err = h.Handle(ctx, nil, cmd)

	require.ErrorIs(t, err, errs.ErrUnauthorized)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateUserCommandHandler_Handle_HasherError(t *testing.T) {
	ctx := context.Background()
	actor := createUserActor(t, account.RoleSystemAdmin, kernel.ID(0))
	cmd, err := commands.NewCreateUserCommand(
		"bob_builder", "s3cret1", account.RoleCustomer, "Bob", "", "", kernel.ID(0),
	)
	require.NoError(t, err)

	factory := new(MockCreateUserUoWFactory)
	hasher := new(MockCreateUserHasher)
	hasher.On("Hash", "s3cret1").Return("", errors.New("hash error")).Once()

	h := commands.NewCreateUserCommandHandler(factory, hasher, services.NewAuthorizer())
	_, err = h.Handle(ctx, actor, cmd)

	require.Error(t, err)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateUserCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := context.Background()
	actor := createUserActor(t, account.RoleSystemAdmin, kernel.ID(0))
	cmd := commands.CreateUserCommand{} // not constructed properly

	factory := new(MockCreateUserUoWFactory)
	hasher := new(MockCreateUserHasher)

	h := commands.NewCreateUserCommandHandler(factory, hasher, services.NewAuthorizer())
	_, err := h.Handle(ctx, actor, cmd)

	require.Error(t, err)
	factory.AssertNotCalled(t, "Create")
}
