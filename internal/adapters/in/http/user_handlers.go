package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"
)

// GetUsers handles GET /api/v1/users.
func (s *Server) GetUsers(ctx echo.Context) error {
	query := queries.NewGetAllUsersQuery()

	users, err := s.queries.AllUsers.Handle(ctx.Request().Context(), actorFrom(ctx), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]User, len(users))
	for i, user := range users {
		response[i] = User{
			ID:             user.ID.Int64(),
			Username:       user.Username,
			Role:           user.Role,
			Name:           user.Name,
			Phone:          user.Phone,
			Email:          user.Email,
			OrganizationID: user.OrganizationID.Int64(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateUser handles POST /api/v1/users.
func (s *Server) CreateUser(ctx echo.Context) error {
	var req NewUser
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx)
	}

	role, err := account.ParseRole(req.Role)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCreateUserCommand(
		req.Username,
		req.Secret,
		role,
		req.Name,
		req.Phone,
		req.Email,
		kernel.ID(req.OrganizationID),
	)
	if err != nil {
		return respondError(ctx, err)
	}

	user, err := s.commands.CreateUser.Handle(ctx.Request().Context(), actorFrom(ctx), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, userToDTO(user))
}

// UpdateUser handles PUT /api/v1/users/:id. An empty secret keeps the stored
// credential.
func (s *Server) UpdateUser(ctx echo.Context) error {
	userID, err := pathID(ctx)
	if err != nil {
		return respondBadRequest(ctx)
	}

	var req NewUser
	if err = ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx)
	}

	role, err := account.ParseRole(req.Role)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateUserCommand(
		userID,
		req.Username,
		req.Secret,
		role,
		req.Name,
		req.Phone,
		req.Email,
		kernel.ID(req.OrganizationID),
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.UpdateUser.Handle(ctx.Request().Context(), actorFrom(ctx), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteUser handles DELETE /api/v1/users/:id.
func (s *Server) DeleteUser(ctx echo.Context) error {
	userID, err := pathID(ctx)
	if err != nil {
		return respondBadRequest(ctx)
	}

	cmd, err := commands.NewDeleteUserCommand(userID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.DeleteUser.Handle(ctx.Request().Context(), actorFrom(ctx), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
