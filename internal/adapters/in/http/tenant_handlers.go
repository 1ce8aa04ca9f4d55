package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"
)

// GetEnterprises handles GET /api/v1/enterprises.
func (s *Server) GetEnterprises(ctx echo.Context) error {
	query := queries.NewGetAllEnterprisesQuery()

	enterprises, err := s.queries.AllEnterprises.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]Enterprise, len(enterprises))
	for i, enterprise := range enterprises {
		response[i] = Enterprise{
			ID:   enterprise.ID.Int64(),
			Name: enterprise.Name,
			Kind: enterprise.Kind,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateEnterprise handles POST /api/v1/enterprises.
func (s *Server) CreateEnterprise(ctx echo.Context) error {
	var req NewEnterprise
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx)
	}

	cmd, err := commands.NewCreateEnterpriseCommand(req.Name, req.Kind)
	if err != nil {
		return respondError(ctx, err)
	}

	enterprise, err := s.commands.CreateEnterprise.Handle(ctx.Request().Context(), actorFrom(ctx), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Enterprise{
		ID:   enterprise.ID().Int64(),
		Name: enterprise.Name(),
		Kind: enterprise.Kind(),
	})
}

// UpdateEnterprise handles PUT /api/v1/enterprises/:id.
func (s *Server) UpdateEnterprise(ctx echo.Context) error {
	enterpriseID, err := pathID(ctx)
	if err != nil {
		return respondBadRequest(ctx)
	}

	var req NewEnterprise
	if err = ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx)
	}

	cmd, err := commands.NewUpdateEnterpriseCommand(enterpriseID, req.Name, req.Kind)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.UpdateEnterprise.Handle(ctx.Request().Context(), actorFrom(ctx), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteEnterprise handles DELETE /api/v1/enterprises/:id.
func (s *Server) DeleteEnterprise(ctx echo.Context) error {
	enterpriseID, err := pathID(ctx)
	if err != nil {
		return respondBadRequest(ctx)
	}

	cmd, err := commands.NewDeleteEnterpriseCommand(enterpriseID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.DeleteEnterprise.Handle(ctx.Request().Context(), actorFrom(ctx), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrganizations handles GET /api/v1/enterprises/:id/organizations.
func (s *Server) GetOrganizations(ctx echo.Context) error {
	enterpriseID, err := pathID(ctx)
	if err != nil {
		return respondBadRequest(ctx)
	}

	query, err := queries.NewGetOrganizationsByEnterpriseQuery(enterpriseID)
	if err != nil {
		return respondError(ctx, err)
	}

	organizations, err := s.queries.OrganizationsByEnterprise.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]Organization, len(organizations))
	for i, organization := range organizations {
		response[i] = Organization{
			ID:           organization.ID.Int64(),
			Name:         organization.Name,
			Kind:         organization.Kind,
			EnterpriseID: organization.EnterpriseID.Int64(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrganization handles POST /api/v1/organizations.
func (s *Server) CreateOrganization(ctx echo.Context) error {
	var req NewOrganization
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx)
	}

	cmd, err := commands.NewCreateOrganizationCommand(req.Name, req.Kind, kernel.ID(req.EnterpriseID))
	if err != nil {
		return respondError(ctx, err)
	}

	organization, err := s.commands.CreateOrganization.Handle(ctx.Request().Context(), actorFrom(ctx), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Organization{
		ID:           organization.ID().Int64(),
		Name:         organization.Name(),
		Kind:         organization.Kind(),
		EnterpriseID: organization.EnterpriseID().Int64(),
	})
}

// UpdateOrganization handles PUT /api/v1/organizations/:id.
func (s *Server) UpdateOrganization(ctx echo.Context) error {
	organizationID, err := pathID(ctx)
	if err != nil {
		return respondBadRequest(ctx)
	}

	var req NewOrganization
	if err = ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx)
	}

	cmd, err := commands.NewUpdateOrganizationCommand(
		organizationID,
		req.Name,
		req.Kind,
		kernel.ID(req.EnterpriseID),
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.UpdateOrganization.Handle(ctx.Request().Context(), actorFrom(ctx), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteOrganization handles DELETE /api/v1/organizations/:id.
func (s *Server) DeleteOrganization(ctx echo.Context) error {
	organizationID, err := pathID(ctx)
	if err != nil {
		return respondBadRequest(ctx)
	}

	cmd, err := commands.NewDeleteOrganizationCommand(organizationID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.DeleteOrganization.Handle(ctx.Request().Context(), actorFrom(ctx), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
