package http

import (
	"net/http"
	"strings"

	domain "fintech-directory/internal/domain/onboarding"
	"fintech-directory/internal/usecase/onboarding"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type OnboardingHandler struct {
	uc  *onboarding.Usecase
	log *zap.Logger
}

func NewOnboardingHandler(uc *onboarding.Usecase, log *zap.Logger) *OnboardingHandler {
	return &OnboardingHandler{uc: uc, log: log}
}

func (h *OnboardingHandler) Create(c echo.Context) error {
	var in onboarding.CreateInput
	if ok, err := bindValid(c, &in); !ok {
		return err
	}
	req, err := h.uc.Create(c.Request().Context(), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, req)
}

func (h *OnboardingHandler) List(c echo.Context) error {
	f := domain.Filter{
		Status:    domain.Status(strings.ToUpper(strings.TrimSpace(c.QueryParam("status")))),
		FintechID: strings.TrimSpace(c.QueryParam("fintechId")),
	}
	page, err := h.uc.List(c.Request().Context(), f, pageParams(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, page)
}

func (h *OnboardingHandler) Get(c echo.Context) error {
	req, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, req)
}

func (h *OnboardingHandler) UpdateStatus(c echo.Context) error {
	var in onboarding.UpdateStatusInput
	if ok, err := bindValid(c, &in); !ok {
		return err
	}
	req, err := h.uc.UpdateStatus(c.Request().Context(), c.Param("id"), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, req)
}

func (h *OnboardingHandler) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Onboarding request deleted successfully"})
}
