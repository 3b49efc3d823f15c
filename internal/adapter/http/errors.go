package http

import (
	"net/http"

	"fintech-directory/internal/domain/apperr"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const msgInternal = "Internal Server Error"

// respondError maps a usecase error onto the JSON error envelope.
// Unexpected errors are logged and answered without internals.
func respondError(c echo.Context, log *zap.Logger, err error) error {
	switch apperr.KindOf(err) {
	case apperr.Validation, apperr.Conflict:
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: apperr.Message(err)})
	case apperr.NotFound:
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: apperr.Message(err)})
	}

	log.Error("request failed",
		zap.String("method", c.Request().Method),
		zap.String("route", c.Path()),
		zap.Error(err),
	)
	msg := apperr.Message(err)
	if msg == "" {
		msg = msgInternal
	}
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: msg})
}

func invalidBody(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
}

func validationFailed(c echo.Context, err error) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Validation error", Details: ToFieldErrors(err)})
}

// bindValid binds the request into dst and validates it. A non-nil
// error means the 400 response has already been written.
func bindValid(c echo.Context, dst any) (bool, error) {
	if err := c.Bind(dst); err != nil {
		return false, invalidBody(c)
	}
	if err := c.Validate(dst); err != nil {
		return false, validationFailed(c, err)
	}
	return true, nil
}
