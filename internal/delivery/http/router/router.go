// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"standmatch/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ImportHandler  *handler.ImportHandler
	BuilderHandler *handler.BuilderHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	importHandler  *handler.ImportHandler
	builderHandler *handler.BuilderHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		importHandler:  params.ImportHandler,
		builderHandler: params.BuilderHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public directory routes
	builderGroup := e.Group("/builders")
	{
		builderGroup.GET("", r.builderHandler.List)
		builderGroup.GET("/:id", r.builderHandler.Get)
		builderGroup.GET("/slug/:slug", r.builderHandler.GetBySlug)
		builderGroup.GET("/:id/qrcode", r.builderHandler.ProfileQR)
	}

	// Admin routes
	adminGroup := e.Group("/admin/builders")
	{
		adminGroup.POST("/import", r.importHandler.Import)
		adminGroup.GET("/template", r.importHandler.Template)
		adminGroup.GET("/stats", r.builderHandler.Stats)
		adminGroup.PATCH("/:id", r.builderHandler.Update)
		adminGroup.DELETE("/:id", r.builderHandler.Delete)
	}
}
