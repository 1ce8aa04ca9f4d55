package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"
)

// GetMenu handles GET /api/v1/restaurants/:id/menu.
func (s *Server) GetMenu(ctx echo.Context) error {
	restaurantID, err := pathID(ctx)
	if err != nil {
		return respondBadRequest(ctx)
	}

	query, err := queries.NewGetMenuQuery(restaurantID)
	if err != nil {
		return respondError(ctx, err)
	}

	items, err := s.queries.Menu.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]MenuItem, len(items))
	for i, item := range items {
		response[i] = menuItemResponseToDTO(item)
	}

	return ctx.JSON(http.StatusOK, response)
}

// AddMenuItem handles POST /api/v1/menu-items.
func (s *Server) AddMenuItem(ctx echo.Context) error {
	var req NewMenuItem
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx)
	}

	cmd, err := commands.NewAddMenuItemCommand(
		kernel.ID(req.RestaurantID),
		req.Name,
		req.Price,
		req.Description,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	item, err := s.commands.AddMenuItem.Handle(ctx.Request().Context(), actorFrom(ctx), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, MenuItem{
		ID:           item.ID().Int64(),
		RestaurantID: item.RestaurantID().Int64(),
		Name:         item.Name(),
		Price:        item.Price(),
		Description:  item.Description(),
	})
}

// UpdateMenuItem handles PUT /api/v1/menu-items/:id.
func (s *Server) UpdateMenuItem(ctx echo.Context) error {
	menuItemID, err := pathID(ctx)
	if err != nil {
		return respondBadRequest(ctx)
	}

	var req NewMenuItem
	if err = ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx)
	}

	cmd, err := commands.NewUpdateMenuItemCommand(
		menuItemID,
		kernel.ID(req.RestaurantID),
		req.Name,
		req.Price,
		req.Description,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.UpdateMenuItem.Handle(ctx.Request().Context(), actorFrom(ctx), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteMenuItem handles DELETE /api/v1/menu-items/:id.
func (s *Server) DeleteMenuItem(ctx echo.Context) error {
	menuItemID, err := pathID(ctx)
	if err != nil {
		return respondBadRequest(ctx)
	}

	cmd, err := commands.NewDeleteMenuItemCommand(menuItemID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.DeleteMenuItem.Handle(ctx.Request().Context(), actorFrom(ctx), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func menuItemResponseToDTO(item queries.MenuItemResponse) MenuItem {
	return MenuItem{
		ID:           item.ID.Int64(),
		RestaurantID: item.RestaurantID.Int64(),
		Name:         item.Name,
		Price:        item.Price,
		Description:  item.Description,
	}
}
