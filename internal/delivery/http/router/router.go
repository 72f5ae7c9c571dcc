// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"agroalert/config"
	"agroalert/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config         *config.Config
	ReportHandler  *handler.ReportHandler
	HeatmapHandler *handler.HeatmapHandler
	UserHandler    *handler.UserHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	cfg            *config.Config
	reportHandler  *handler.ReportHandler
	heatmapHandler *handler.HeatmapHandler
	userHandler    *handler.UserHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cfg:            params.Config,
		reportHandler:  params.ReportHandler,
		heatmapHandler: params.HeatmapHandler,
		userHandler:    params.UserHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Disease report and alert routes
	e.POST("/reports", r.reportHandler.CreateReport)
	e.GET("/alerts", r.reportHandler.ListAlerts)

	// Heatmap routes
	e.GET("/heatmap", r.heatmapHandler.ListHeatmap)

	// User routes
	userGroup := e.Group("/users")
	{
		userGroup.POST("/register", r.userHandler.Register)
		userGroup.GET("/:id", r.userHandler.GetUser)
	}

	// Unfiltered heatmap dump, only exposed when test routes are enabled
	if r.cfg.TestRoutes != nil && r.cfg.TestRoutes.Enabled {
		e.GET("/heatmap/all", r.heatmapHandler.ListHeatmapAll)
	}
}
