package http

import (
	"net/http"
	"strings"

	domain "fintech-directory/internal/domain/institution"
	"fintech-directory/internal/usecase/institution"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type InstitutionHandler struct {
	uc  *institution.Usecase
	log *zap.Logger
}

func NewInstitutionHandler(uc *institution.Usecase, log *zap.Logger) *InstitutionHandler {
	return &InstitutionHandler{uc: uc, log: log}
}

func (h *InstitutionHandler) List(c echo.Context) error {
	f := domain.Filter{
		Query:     strings.TrimSpace(c.QueryParam("query")),
		Category:  domain.Category(c.QueryParam("category")),
		Countries: queryList(c, "countries"),
		Risk:      domain.Risk(c.QueryParam("riskLevel")),
		IsPartner: queryBool(c, "isPartner"),
		MinRating: queryFloat(c, "minRating"),
	}
	page, err := h.uc.List(c.Request().Context(), f, pageParams(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, page)
}

func (h *InstitutionHandler) Get(c echo.Context) error {
	d, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, d)
}

func (h *InstitutionHandler) GetBySlug(c echo.Context) error {
	inst, err := h.uc.GetBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, inst)
}

func (h *InstitutionHandler) Create(c echo.Context) error {
	var in institution.CreateInput
	if ok, err := bindValid(c, &in); !ok {
		return err
	}
	inst, err := h.uc.Create(c.Request().Context(), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, inst)
}

func (h *InstitutionHandler) Update(c echo.Context) error {
	var in institution.UpdateInput
	if ok, err := bindValid(c, &in); !ok {
		return err
	}
	inst, err := h.uc.Update(c.Request().Context(), c.Param("id"), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, inst)
}

func (h *InstitutionHandler) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Institution deleted successfully"})
}
