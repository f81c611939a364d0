package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/labstack/echo/v4"

	"tours/internal/entities"
)

type ErrorResponse struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

var statusBySentinel = []struct {
	err    error
	status int
}{
	{entities.ErrNotFound, http.StatusNotFound},
	{entities.ErrUnauthorized, http.StatusUnauthorized},
	{entities.ErrForbidden, http.StatusForbidden},
	{entities.ErrInvalidSignature, http.StatusBadRequest},
	{entities.ErrAmountMismatch, http.StatusBadRequest},
	{entities.ErrInvalidTarget, http.StatusBadRequest},
	{entities.ErrNotEnoughSlots, http.StatusConflict},
	{entities.ErrConflict, http.StatusConflict},
}

// HandleError renders every handler error as {message, errors}. Unknown errors
// are logged and hidden behind a generic 500.
func HandleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status, body := errorResponse(err)
	if status >= http.StatusInternalServerError {
		log.FromContext(c.Request().Context()).
			WithError(err).
			WithField("path", c.Request().URL.Path).
			Error("Request failed")
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = c.JSON(status, body)
	}
	if err != nil {
		log.FromContext(c.Request().Context()).WithError(err).Error("Could not write error response")
	}
}

func errorResponse(err error) (int, ErrorResponse) {
	var internal validation.InternalError
	if errors.As(err, &internal) {
		return http.StatusInternalServerError, ErrorResponse{Message: "Internal server error"}
	}

	var verrs validation.Errors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for field, ferr := range verrs {
			fields[field] = ferr.Error()
		}
		return http.StatusBadRequest, ErrorResponse{Message: "Validation failed", Errors: fields}
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code, ErrorResponse{Message: fmt.Sprint(httpErr.Message)}
	}

	for _, s := range statusBySentinel {
		if errors.Is(err, s.err) {
			return s.status, ErrorResponse{Message: err.Error()}
		}
	}

	return http.StatusInternalServerError, ErrorResponse{Message: "Internal server error"}
}
