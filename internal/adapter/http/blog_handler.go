package http

import (
	"net/http"
	"strings"

	domain "fintech-directory/internal/domain/blog"
	"fintech-directory/internal/usecase/blog"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type BlogHandler struct {
	uc  *blog.Usecase
	log *zap.Logger
}

func NewBlogHandler(uc *blog.Usecase, log *zap.Logger) *BlogHandler {
	return &BlogHandler{uc: uc, log: log}
}

func (h *BlogHandler) List(c echo.Context) error {
	q := blog.ListQuery{
		Query:       strings.TrimSpace(c.QueryParam("query")),
		Category:    c.QueryParam("category"),
		Locale:      domain.Locale(strings.ToUpper(strings.TrimSpace(c.QueryParam("locale")))),
		IsPublished: queryBool(c, "isPublished"),
	}
	page, err := h.uc.List(c.Request().Context(), q, pageParams(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, page)
}

func (h *BlogHandler) Create(c echo.Context) error {
	var in blog.CreateInput
	if ok, err := bindValid(c, &in); !ok {
		return err
	}
	post, err := h.uc.Create(c.Request().Context(), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, post)
}
