package http

import (
	"errors"
	"net/http"

	"github.com/arrows94/3d-order-manager/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// writeError maps an application error onto the HTTP status taxonomy:
//
//	400 malformed or missing input
//	401 failed operator authentication
//	404 order not found
//	409 lost a conditional-update race
//	422 transition not allowed from the current status
//	502 storage failure
//
// Anything unrecognized becomes a 500 with a generic message so internal
// details never leak to clients.
func writeError(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	message := "internal error"

	switch {
	case errors.Is(err, errs.ErrValueIsRequired) || errors.Is(err, errs.ErrValueIsInvalid):
		status = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, errs.ErrUnauthorized):
		status = http.StatusUnauthorized
		message = "not permitted"
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
		message = "order not found"
	case errors.Is(err, errs.ErrInvalidTransition):
		status = http.StatusUnprocessableEntity
		message = err.Error()
	case errors.Is(err, errs.ErrConcurrentModification):
		status = http.StatusConflict
		message = "order was modified concurrently, re-read and retry"
	case errors.Is(err, errs.ErrStorageFailure):
		status = http.StatusBadGateway
		message = "storage unavailable"
	}

	return c.JSON(status, ErrorResponse{Code: status, Message: message})
}

// writeCustomerError hides token-related details on customer-facing
// endpoints: an unknown order and a mismatched token uniformly become 404,
// so the endpoints cannot be used to probe which tokens exist. Other errors
// keep their regular mapping.
func writeCustomerError(c echo.Context, err error) error {
	if errors.Is(err, errs.ErrObjectNotFound) || errors.Is(err, errs.ErrUnauthorized) {
		return c.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: "order not found",
		})
	}
	return writeError(c, err)
}
