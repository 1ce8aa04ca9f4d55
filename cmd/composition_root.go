package cmd

import (
	"log/slog"

	"gorm.io/gorm"

	httpadapter "fooddelivery/internal/adapters/in/http"
	"fooddelivery/internal/adapters/out/crypt"
	"fooddelivery/internal/adapters/out/postgres"
	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/jobs"
)

// CompositionRoot wires adapters to use case handlers. All handlers share one
// gorm connection pool; each command handler opens its own transaction
// through a unit of work.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	hasher     crypt.BcryptHasher
	authorizer services.Authorizer
	logger     *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		hasher:     crypt.NewBcryptHasher(),
		authorizer: services.NewAuthorizer(),
		logger:     logger,
	}
}

// CreateCommandHandlers builds the full write-side handler set.
func (c *CompositionRoot) CreateCommandHandlers() httpadapter.CommandHandlers {
	userUoWs := FuncUserUoWFactory(func() commands.UserUoW { return c.uowFactory.Create() })
	tenantUoWs := FuncTenantUoWFactory(func() commands.TenantUoW { return c.uowFactory.Create() })
	orderUoWs := FuncOrderUoWFactory(func() commands.OrderUoW { return c.uowFactory.Create() })
	menuUoWs := FuncMenuUoWFactory(func() commands.MenuUoW { return c.uowFactory.Create() })
	workRequestUoWs := FuncWorkRequestUoWFactory(func() commands.WorkRequestUoW { return c.uowFactory.Create() })

	counts := queries.NewDependentCounts(c.gormDB)

	return httpadapter.CommandHandlers{
		Authenticate:            commands.NewAuthenticateCommandHandler(c.userRepository(), c.hasher, c.logger),
		CreateUser:              commands.NewCreateUserCommandHandler(userUoWs, c.hasher, c.authorizer),
		UpdateUser:              commands.NewUpdateUserCommandHandler(userUoWs, c.hasher, c.authorizer),
		DeleteUser:              commands.NewDeleteUserCommandHandler(userUoWs, c.authorizer),
		CreateEnterprise:        commands.NewCreateEnterpriseCommandHandler(tenantUoWs),
		UpdateEnterprise:        commands.NewUpdateEnterpriseCommandHandler(tenantUoWs),
		DeleteEnterprise:        commands.NewDeleteEnterpriseCommandHandler(tenantUoWs, counts),
		CreateOrganization:      commands.NewCreateOrganizationCommandHandler(tenantUoWs, c.authorizer),
		UpdateOrganization:      commands.NewUpdateOrganizationCommandHandler(tenantUoWs, c.authorizer),
		DeleteOrganization:      commands.NewDeleteOrganizationCommandHandler(tenantUoWs, c.authorizer, counts),
		PlaceOrder:              commands.NewPlaceOrderCommandHandler(orderUoWs),
		UpdateOrderStatus:       commands.NewUpdateOrderStatusCommandHandler(orderUoWs),
		AddMenuItem:             commands.NewAddMenuItemCommandHandler(menuUoWs),
		UpdateMenuItem:          commands.NewUpdateMenuItemCommandHandler(menuUoWs),
		DeleteMenuItem:          commands.NewDeleteMenuItemCommandHandler(menuUoWs),
		CreateWorkRequest:       commands.NewCreateWorkRequestCommandHandler(workRequestUoWs, c.authorizer),
		UpdateWorkRequestStatus: commands.NewUpdateWorkRequestStatusCommandHandler(workRequestUoWs, c.authorizer),
	}
}

// CreateQueryHandlers builds the full read-side handler set.
func (c *CompositionRoot) CreateQueryHandlers() httpadapter.QueryHandlers {
	return httpadapter.QueryHandlers{
		OrdersByCustomer:          queries.NewGetOrdersByCustomerQueryHandler(c.gormDB, c.logger),
		OrdersByRestaurant:        queries.NewGetOrdersByRestaurantQueryHandler(c.gormDB, c.logger),
		OrdersByDeliveryMan:       queries.NewGetOrdersByDeliveryManQueryHandler(c.gormDB, c.logger),
		OrderItems:                queries.NewGetOrderItemsQueryHandler(c.gormDB, c.logger),
		Menu:                      queries.NewGetMenuQueryHandler(c.gormDB, c.logger),
		WorkRequestsByReceiver:    queries.NewGetWorkRequestsByReceiverQueryHandler(c.gormDB, c.authorizer, c.logger),
		WorkRequestsBySender:      queries.NewGetWorkRequestsBySenderQueryHandler(c.gormDB, c.authorizer, c.logger),
		AllWorkRequests:           queries.NewGetAllWorkRequestsQueryHandler(c.gormDB, c.logger),
		AllUsers:                  queries.NewGetAllUsersQueryHandler(c.gormDB, c.logger),
		AllEnterprises:            queries.NewGetAllEnterprisesQueryHandler(c.gormDB, c.logger),
		OrganizationsByEnterprise: queries.NewGetOrganizationsByEnterpriseQueryHandler(c.gormDB, c.logger),
	}
}

// CreateJobManager builds the background job set.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	staleOrders := queries.NewGetStaleOrdersQueryHandler(c.gormDB, c.logger)
	return jobs.NewJobManager(staleOrders, c.logger)
}

// userRepository returns a repository outside any transaction, for the
// authentication path which performs single reads and a best-effort
// credential rewrite.
func (c *CompositionRoot) userRepository() ports.UserRepository {
	return c.uowFactory.Create().UserRepository()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncTenantUoWFactory func() commands.TenantUoW

func (f FuncTenantUoWFactory) Create() commands.TenantUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncMenuUoWFactory func() commands.MenuUoW

func (f FuncMenuUoWFactory) Create() commands.MenuUoW {
	return f()
}

type FuncWorkRequestUoWFactory func() commands.WorkRequestUoW

func (f FuncWorkRequestUoWFactory) Create() commands.WorkRequestUoW {
	return f()
}
