package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
)

// PlaceOrder handles POST /api/v1/orders.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var req NewOrder
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx)
	}

	lines := make([]commands.OrderLine, len(req.Items))
	for i, item := range req.Items {
		lines[i] = commands.OrderLine{
			MenuItemID: kernel.ID(item.MenuItemID),
			Quantity:   item.Quantity,
		}
	}

	cmd, err := commands.NewPlaceOrderCommand(
		kernel.ID(req.CustomerID),
		kernel.ID(req.RestaurantID),
		req.DeliveryAddress,
		req.Comment,
		lines,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	placed, err := s.commands.PlaceOrder.Handle(ctx.Request().Context(), actorFrom(ctx), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderToDTO(placed))
}

// UpdateOrderStatus handles POST /api/v1/orders/:id/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := pathID(ctx)
	if err != nil {
		return respondBadRequest(ctx)
	}

	var req OrderStatusUpdate
	if err = ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx)
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, status, kernel.ID(req.DeliveryManID))
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.UpdateOrderStatus.Handle(ctx.Request().Context(), actorFrom(ctx), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrderItems handles GET /api/v1/orders/:id/items.
func (s *Server) GetOrderItems(ctx echo.Context) error {
	orderID, err := pathID(ctx)
	if err != nil {
		return respondBadRequest(ctx)
	}

	query, err := queries.NewGetOrderItemsQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	items, err := s.queries.OrderItems.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]OrderItem, len(items))
	for i, item := range items {
		response[i] = OrderItem{
			ID:           item.ID.Int64(),
			OrderID:      item.OrderID.Int64(),
			MenuItemName: item.MenuItemName,
			UnitPrice:    item.UnitPrice,
			Quantity:     item.Quantity,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrdersByCustomer handles GET /api/v1/customers/:id/orders.
func (s *Server) GetOrdersByCustomer(ctx echo.Context) error {
	customerID, err := pathID(ctx)
	if err != nil {
		return respondBadRequest(ctx)
	}

	query, err := queries.NewGetOrdersByCustomerQuery(customerID)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.queries.OrdersByCustomer.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponsesToDTO(orders))
}

// GetOrdersByRestaurant handles GET /api/v1/restaurants/:id/orders.
func (s *Server) GetOrdersByRestaurant(ctx echo.Context) error {
	restaurantID, err := pathID(ctx)
	if err != nil {
		return respondBadRequest(ctx)
	}

	query, err := queries.NewGetOrdersByRestaurantQuery(restaurantID)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.queries.OrdersByRestaurant.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponsesToDTO(orders))
}

// GetOrdersByDeliveryMan handles GET /api/v1/deliverymen/:id/orders.
func (s *Server) GetOrdersByDeliveryMan(ctx echo.Context) error {
	deliveryManID, err := pathID(ctx)
	if err != nil {
		return respondBadRequest(ctx)
	}

	query, err := queries.NewGetOrdersByDeliveryManQuery(deliveryManID)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.queries.OrdersByDeliveryMan.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponsesToDTO(orders))
}

func orderToDTO(aggregate *order.Order) Order {
	var deliveryManID int64
	if id := aggregate.DeliveryManID(); id != nil {
		deliveryManID = id.Int64()
	}

	return Order{
		ID:              aggregate.ID().Int64(),
		CustomerID:      aggregate.CustomerID().Int64(),
		RestaurantID:    aggregate.RestaurantID().Int64(),
		DeliveryManID:   deliveryManID,
		Status:          aggregate.Status().String(),
		CreatedAt:       aggregate.CreatedAt(),
		DeliveryAddress: aggregate.DeliveryAddress(),
		Comment:         aggregate.Comment(),
	}
}

func orderResponsesToDTO(orders []queries.OrderResponse) []Order {
	response := make([]Order, len(orders))
	for i, resp := range orders {
		response[i] = Order{
			ID:              resp.ID.Int64(),
			CustomerID:      resp.CustomerID.Int64(),
			RestaurantID:    resp.RestaurantID.Int64(),
			DeliveryManID:   resp.DeliveryManID.Int64(),
			Status:          resp.Status,
			CreatedAt:       resp.CreatedAt,
			DeliveryAddress: resp.DeliveryAddress,
			Comment:         resp.Comment,
		}
	}
	return response
}
