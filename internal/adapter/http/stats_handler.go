package http

import (
	"net/http"

	"fintech-directory/internal/usecase/stats"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type StatsHandler struct {
	uc  *stats.Usecase
	log *zap.Logger
}

func NewStatsHandler(uc *stats.Usecase, log *zap.Logger) *StatsHandler {
	return &StatsHandler{uc: uc, log: log}
}

func (h *StatsHandler) Dashboard(c echo.Context) error {
	d, err := h.uc.Dashboard(c.Request().Context())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, d)
}
