package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"
)

// respondError maps a domain error onto an HTTP status. Validation faults are
// the caller's, authorization faults are forbidden, and everything
// unrecognized is a generic server failure whose detail stays out of the
// response body.
func respondError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrNotAuthenticated):
		return ctx.JSON(http.StatusUnauthorized, Error{
			Code:    http.StatusUnauthorized,
			Message: "not authenticated",
		})
	case errors.Is(err, errs.ErrUnauthorized):
		return ctx.JSON(http.StatusForbidden, Error{
			Code:    http.StatusForbidden,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, commands.ErrUsernameAlreadyExists),
		errors.Is(err, commands.ErrEnterpriseHasDependents),
		errors.Is(err, commands.ErrOrganizationHasDependents):
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, order.ErrDeliveryManRequired):
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "internal error",
		})
	}
}

// respondBadRequest reports a malformed request body.
func respondBadRequest(ctx echo.Context) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: "invalid request body",
	})
}
