package http

import (
	"net/http"

	"fintech-directory/internal/usecase/contact"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type ContactHandler struct {
	uc  *contact.Usecase
	log *zap.Logger
}

func NewContactHandler(uc *contact.Usecase, log *zap.Logger) *ContactHandler {
	return &ContactHandler{uc: uc, log: log}
}

func (h *ContactHandler) Submit(c echo.Context) error {
	var in contact.Input
	if ok, err := bindValid(c, &in); !ok {
		return err
	}
	if err := h.uc.Submit(c.Request().Context(), in); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Message sent successfully!"})
}
