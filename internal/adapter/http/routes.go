package http

import "github.com/labstack/echo/v4"

// Routes groups everything RegisterRoutes mounts. Nil middlewares are skipped.
type Routes struct {
	Health       *Handler
	Institutions *InstitutionHandler
	Onboarding   *OnboardingHandler
	Blog         *BlogHandler
	Newsletter   *NewsletterHandler
	Contact      *ContactHandler
	Upload       *UploadHandler
	Stats        *StatsHandler

	Admin       echo.MiddlewareFunc
	Idempotency echo.MiddlewareFunc
}

func RegisterRoutes(e *echo.Echo, r Routes) {
	admin := optional(r.Admin)
	idem := optional(r.Idempotency)

	e.GET("/health", r.Health.Health)

	e.GET("/institutions", r.Institutions.List)
	e.GET("/institutions/slug/:slug", r.Institutions.GetBySlug)
	e.GET("/institutions/:id", r.Institutions.Get)
	e.POST("/institutions", r.Institutions.Create, admin...)
	e.PUT("/institutions/:id", r.Institutions.Update, admin...)
	e.DELETE("/institutions/:id", r.Institutions.Delete, admin...)

	e.POST("/onboarding", r.Onboarding.Create, idem...)
	e.GET("/onboarding", r.Onboarding.List, admin...)
	e.GET("/onboarding/:id", r.Onboarding.Get, admin...)
	e.PUT("/onboarding/:id", r.Onboarding.UpdateStatus, admin...)
	e.DELETE("/onboarding/:id", r.Onboarding.Delete, admin...)

	e.GET("/stats", r.Stats.Dashboard, admin...)

	e.GET("/blog", r.Blog.List)
	e.POST("/blog", r.Blog.Create, admin...)

	e.POST("/newsletter", r.Newsletter.Subscribe, idem...)
	e.DELETE("/newsletter", r.Newsletter.Unsubscribe)
	e.GET("/newsletter", r.Newsletter.List, admin...)

	e.POST("/contact", r.Contact.Submit, idem...)

	e.POST("/upload", r.Upload.Upload)
	e.GET("/upload", r.Upload.Limits)
}

func optional(mw echo.MiddlewareFunc) []echo.MiddlewareFunc {
	if mw == nil {
		return nil
	}
	return []echo.MiddlewareFunc{mw}
}
