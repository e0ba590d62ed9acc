package http

import (
	"errors"
	"net/http"

	"restaurant/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the payload of every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// writeError maps a domain or application error onto a status code.
// Errors outside the known kinds are hidden behind a generic 500 message.
func writeError(c echo.Context, err error) error {
	status := statusFor(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		c.Logger().Error(err)
		message = "internal server error"
	}
	return writeErrorResponse(c, status, message)
}

func writeErrorResponse(c echo.Context, status int, message string) error {
	return c.JSON(status, Error{
		Code:    status,
		Message: message,
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrObjectIsReferenced):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrStatusTransitionIsInvalid):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
