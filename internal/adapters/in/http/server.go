// Package http exposes the application's operations over REST. Every mutating
// route resolves the caller's identity from a bearer token and threads it into
// the command handlers; there is no ambient "current user".
package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"
)

// CommandHandlers groups the write-side handlers the server dispatches to.
type CommandHandlers struct {
	Authenticate            commands.AuthenticateCommandHandler
	CreateUser              commands.CreateUserCommandHandler
	UpdateUser              commands.UpdateUserCommandHandler
	DeleteUser              commands.DeleteUserCommandHandler
	CreateEnterprise        commands.CreateEnterpriseCommandHandler
	UpdateEnterprise        commands.UpdateEnterpriseCommandHandler
	DeleteEnterprise        commands.DeleteEnterpriseCommandHandler
	CreateOrganization      commands.CreateOrganizationCommandHandler
	UpdateOrganization      commands.UpdateOrganizationCommandHandler
	DeleteOrganization      commands.DeleteOrganizationCommandHandler
	PlaceOrder              commands.PlaceOrderCommandHandler
	UpdateOrderStatus       commands.UpdateOrderStatusCommandHandler
	AddMenuItem             commands.AddMenuItemCommandHandler
	UpdateMenuItem          commands.UpdateMenuItemCommandHandler
	DeleteMenuItem          commands.DeleteMenuItemCommandHandler
	CreateWorkRequest       commands.CreateWorkRequestCommandHandler
	UpdateWorkRequestStatus commands.UpdateWorkRequestStatusCommandHandler
}

// QueryHandlers groups the read-side handlers the server dispatches to.
type QueryHandlers struct {
	OrdersByCustomer          queries.GetOrdersByCustomerQueryHandler
	OrdersByRestaurant        queries.GetOrdersByRestaurantQueryHandler
	OrdersByDeliveryMan       queries.GetOrdersByDeliveryManQueryHandler
	OrderItems                queries.GetOrderItemsQueryHandler
	Menu                      queries.GetMenuQueryHandler
	WorkRequestsByReceiver    queries.GetWorkRequestsByReceiverQueryHandler
	WorkRequestsBySender      queries.GetWorkRequestsBySenderQueryHandler
	AllWorkRequests           queries.GetAllWorkRequestsQueryHandler
	AllUsers                  queries.GetAllUsersQueryHandler
	AllEnterprises            queries.GetAllEnterprisesQueryHandler
	OrganizationsByEnterprise queries.GetOrganizationsByEnterpriseQueryHandler
}

// Server wires HTTP routes to command and query handlers.
type Server struct {
	commands CommandHandlers
	queries  QueryHandlers
	sessions *SessionStore
}

// NewServer creates an HTTP server backed by the given handlers.
func NewServer(commandHandlers CommandHandlers, queryHandlers QueryHandlers, sessions *SessionStore) *Server {
	return &Server{
		commands: commandHandlers,
		queries:  queryHandlers,
		sessions: sessions,
	}
}

// RegisterRoutes attaches all routes to the echo instance. Everything except
// login sits behind the session middleware.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.POST("/auth/login", s.Login)

	authed := api.Group("", s.requireSession)
	authed.POST("/auth/logout", s.Logout)

	authed.GET("/users", s.GetUsers)
	authed.POST("/users", s.CreateUser)
	authed.PUT("/users/:id", s.UpdateUser)
	authed.DELETE("/users/:id", s.DeleteUser)

	authed.GET("/enterprises", s.GetEnterprises)
	authed.POST("/enterprises", s.CreateEnterprise)
	authed.PUT("/enterprises/:id", s.UpdateEnterprise)
	authed.DELETE("/enterprises/:id", s.DeleteEnterprise)

	authed.GET("/enterprises/:id/organizations", s.GetOrganizations)
	authed.POST("/organizations", s.CreateOrganization)
	authed.PUT("/organizations/:id", s.UpdateOrganization)
	authed.DELETE("/organizations/:id", s.DeleteOrganization)

	authed.POST("/orders", s.PlaceOrder)
	authed.POST("/orders/:id/status", s.UpdateOrderStatus)
	authed.GET("/orders/:id/items", s.GetOrderItems)
	authed.GET("/customers/:id/orders", s.GetOrdersByCustomer)
	authed.GET("/restaurants/:id/orders", s.GetOrdersByRestaurant)
	authed.GET("/deliverymen/:id/orders", s.GetOrdersByDeliveryMan)

	authed.GET("/restaurants/:id/menu", s.GetMenu)
	authed.POST("/menu-items", s.AddMenuItem)
	authed.PUT("/menu-items/:id", s.UpdateMenuItem)
	authed.DELETE("/menu-items/:id", s.DeleteMenuItem)

	authed.POST("/work-requests", s.CreateWorkRequest)
	authed.POST("/work-requests/:id/status", s.UpdateWorkRequestStatus)
	authed.GET("/work-requests", s.GetAllWorkRequests)
	authed.GET("/enterprises/:id/work-requests/received", s.GetWorkRequestsByReceiver)
	authed.GET("/enterprises/:id/work-requests/sent", s.GetWorkRequestsBySender)
}

const actorContextKey = "actor"

// requireSession resolves the bearer token to a user and stores it on the
// request context. Unknown or missing tokens are rejected before any handler
// runs.
func (s *Server) requireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		token := bearerToken(ctx)
		if token == "" {
			return ctx.JSON(http.StatusUnauthorized, Error{
				Code:    http.StatusUnauthorized,
				Message: "missing bearer token",
			})
		}

		actor := s.sessions.Get(token)
		if actor == nil {
			return ctx.JSON(http.StatusUnauthorized, Error{
				Code:    http.StatusUnauthorized,
				Message: "invalid or expired session",
			})
		}

		ctx.Set(actorContextKey, actor)
		return next(ctx)
	}
}

func bearerToken(ctx echo.Context) string {
	header := ctx.Request().Header.Get(echo.HeaderAuthorization)
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}

func actorFrom(ctx echo.Context) *account.User {
	actor, _ := ctx.Get(actorContextKey).(*account.User)
	return actor
}

func pathID(ctx echo.Context) (kernel.ID, error) {
	raw, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return 0, err
	}
	return kernel.ID(raw), nil
}

// Login handles POST /api/v1/auth/login. A successful authentication mints a
// session token; every failure returns the same outcome regardless of cause.
func (s *Server) Login(ctx echo.Context) error {
	var req LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx)
	}

	cmd := commands.NewAuthenticateCommand(req.Username, req.Secret)
	user, err := s.commands.Authenticate.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	token := s.sessions.Add(user)
	return ctx.JSON(http.StatusOK, LoginResponse{
		Token: token,
		User:  userToDTO(user),
	})
}

// Logout handles POST /api/v1/auth/logout. Dropping an already-dropped token
// is fine; logout is idempotent.
func (s *Server) Logout(ctx echo.Context) error {
	s.sessions.Remove(bearerToken(ctx))
	return ctx.NoContent(http.StatusNoContent)
}

func userToDTO(user *account.User) User {
	return User{
		ID:             user.ID().Int64(),
		Username:       user.Username(),
		Role:           user.Role().String(),
		Name:           user.Name(),
		Phone:          user.Phone().String(),
		Email:          user.Email().String(),
		OrganizationID: user.OrganizationID().Int64(),
	}
}
