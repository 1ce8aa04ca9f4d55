package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/workrequest"
)

// CreateWorkRequest handles POST /api/v1/work-requests.
func (s *Server) CreateWorkRequest(ctx echo.Context) error {
	var req NewWorkRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx)
	}

	cmd, err := commands.NewCreateWorkRequestCommand(
		req.Kind,
		kernel.ID(req.SenderEnterpriseID),
		kernel.ID(req.ReceiverEnterpriseID),
		kernel.ID(req.RelatedOrderID),
		req.Message,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.commands.CreateWorkRequest.Handle(ctx.Request().Context(), actorFrom(ctx), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	var relatedOrderID int64
	if id := created.RelatedOrderID(); id != nil {
		relatedOrderID = id.Int64()
	}

	return ctx.JSON(http.StatusCreated, WorkRequest{
		ID:                   created.ID().Int64(),
		Kind:                 created.Kind(),
		SenderEnterpriseID:   created.SenderEnterpriseID().Int64(),
		ReceiverEnterpriseID: created.ReceiverEnterpriseID().Int64(),
		RelatedOrderID:       relatedOrderID,
		Status:               created.Status().String(),
		Message:              created.Message(),
		CreatedAt:            created.CreatedAt(),
	})
}

// UpdateWorkRequestStatus handles POST /api/v1/work-requests/:id/status.
func (s *Server) UpdateWorkRequestStatus(ctx echo.Context) error {
	workRequestID, err := pathID(ctx)
	if err != nil {
		return respondBadRequest(ctx)
	}

	var req WorkRequestStatusUpdate
	if err = ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx)
	}

	status, err := workrequest.StatusFromString(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateWorkRequestStatusCommand(workRequestID, status)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.UpdateWorkRequestStatus.Handle(ctx.Request().Context(), actorFrom(ctx), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetAllWorkRequests handles GET /api/v1/work-requests.
func (s *Server) GetAllWorkRequests(ctx echo.Context) error {
	query := queries.NewGetAllWorkRequestsQuery()

	requests, err := s.queries.AllWorkRequests.Handle(ctx.Request().Context(), actorFrom(ctx), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, workRequestResponsesToDTO(requests))
}

// GetWorkRequestsByReceiver handles GET /api/v1/enterprises/:id/work-requests/received.
func (s *Server) GetWorkRequestsByReceiver(ctx echo.Context) error {
	enterpriseID, err := pathID(ctx)
	if err != nil {
		return respondBadRequest(ctx)
	}

	query, err := queries.NewGetWorkRequestsByReceiverQuery(enterpriseID)
	if err != nil {
		return respondError(ctx, err)
	}

	requests, err := s.queries.WorkRequestsByReceiver.Handle(ctx.Request().Context(), actorFrom(ctx), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, workRequestResponsesToDTO(requests))
}

// GetWorkRequestsBySender handles GET /api/v1/enterprises/:id/work-requests/sent.
func (s *Server) GetWorkRequestsBySender(ctx echo.Context) error {
	enterpriseID, err := pathID(ctx)
	if err != nil {
		return respondBadRequest(ctx)
	}

	query, err := queries.NewGetWorkRequestsBySenderQuery(enterpriseID)
	if err != nil {
		return respondError(ctx, err)
	}

	requests, err := s.queries.WorkRequestsBySender.Handle(ctx.Request().Context(), actorFrom(ctx), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, workRequestResponsesToDTO(requests))
}

func workRequestResponsesToDTO(requests []queries.WorkRequestResponse) []WorkRequest {
	response := make([]WorkRequest, len(requests))
	for i, req := range requests {
		response[i] = WorkRequest{
			ID:                   req.ID.Int64(),
			Kind:                 req.Kind,
			SenderEnterpriseID:   req.SenderEnterpriseID.Int64(),
			ReceiverEnterpriseID: req.ReceiverEnterpriseID.Int64(),
			RelatedOrderID:       req.RelatedOrderID.Int64(),
			Status:               req.Status,
			Message:              req.Message,
			CreatedAt:            req.CreatedAt,
		}
	}
	return response
}
