package http

import (
	"net/http"
	"strings"

	domain "fintech-directory/internal/domain/newsletter"
	"fintech-directory/internal/usecase/newsletter"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type NewsletterHandler struct {
	uc  *newsletter.Usecase
	log *zap.Logger
}

func NewNewsletterHandler(uc *newsletter.Usecase, log *zap.Logger) *NewsletterHandler {
	return &NewsletterHandler{uc: uc, log: log}
}

// Subscribe answers 201 for a new address and 200 when nothing new was created.
func (h *NewsletterHandler) Subscribe(c echo.Context) error {
	var in newsletter.SubscribeInput
	if ok, err := bindValid(c, &in); !ok {
		return err
	}
	outcome, err := h.uc.Subscribe(c.Request().Context(), in.Email)
	if err != nil {
		return respondError(c, h.log, err)
	}
	code := http.StatusOK
	if outcome == newsletter.Subscribed {
		code = http.StatusCreated
	}
	return c.JSON(code, map[string]string{"message": outcome.Message()})
}

// Unsubscribe takes the address from the JSON body or, for mail links, the query string.
func (h *NewsletterHandler) Unsubscribe(c echo.Context) error {
	var in newsletter.SubscribeInput
	if err := c.Bind(&in); err != nil {
		return invalidBody(c)
	}
	if strings.TrimSpace(in.Email) == "" {
		in.Email = c.QueryParam("email")
	}
	if err := c.Validate(&in); err != nil {
		return validationFailed(c, err)
	}
	if err := h.uc.Unsubscribe(c.Request().Context(), in.Email); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Successfully unsubscribed from newsletter"})
}

func (h *NewsletterHandler) List(c echo.Context) error {
	page, err := h.uc.List(c.Request().Context(), domain.Filter{IsActive: queryBool(c, "isActive")}, pageParams(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, page)
}
