// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"cityportal/internal/delivery/http/middleware"
	"cityportal/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler          *handler.UserHandler
	TwinCityHandler      *handler.TwinCityHandler
	LocationHandler      *handler.LocationHandler
	IndicatorHandler     *handler.IndicatorHandler
	GalleryHandler       *handler.GalleryHandler
	DocumentHandler      *handler.DocumentHandler
	CollaborationHandler *handler.CollaborationHandler
	AuthMiddleware       *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
//
// Read endpoints are public so the portal frontend can render without a
// session; every mutation goes through the token gate.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	auth := r.params.AuthMiddleware.Authenticate

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.params.UserHandler.Login)
	}

	// User routes that require authentication
	userGroup := e.Group("/user")
	userGroup.Use(auth)
	{
		userGroup.GET("/profile", r.params.UserHandler.GetProfile)
	}

	twinCities := e.Group("/twin-cities")
	{
		twinCities.GET("", r.params.TwinCityHandler.List)
		twinCities.GET("/:id", r.params.TwinCityHandler.Get)
		twinCities.POST("", r.params.TwinCityHandler.Create, auth)
		twinCities.PUT("/:id", r.params.TwinCityHandler.Update, auth)
		twinCities.DELETE("/:id", r.params.TwinCityHandler.Delete, auth)
	}

	locations := e.Group("/locations")
	{
		locations.GET("", r.params.LocationHandler.List)
		locations.GET("/:id", r.params.LocationHandler.Get)
		locations.POST("", r.params.LocationHandler.Create, auth)
		locations.PUT("/:id", r.params.LocationHandler.Update, auth)
		locations.DELETE("/:id", r.params.LocationHandler.Delete, auth)
	}

	indicators := e.Group("/indicators")
	{
		indicators.GET("", r.params.IndicatorHandler.List)
		indicators.GET("/:id", r.params.IndicatorHandler.Get)
		indicators.POST("", r.params.IndicatorHandler.Create, auth)
		indicators.PUT("/:id", r.params.IndicatorHandler.Update, auth)
		indicators.DELETE("/:id", r.params.IndicatorHandler.Delete, auth)
	}

	galleries := e.Group("/galleries")
	{
		galleries.GET("", r.params.GalleryHandler.List)
		galleries.GET("/:id", r.params.GalleryHandler.Get)
		galleries.POST("", r.params.GalleryHandler.Create, auth)
		galleries.PUT("/:id", r.params.GalleryHandler.Update, auth)
		galleries.DELETE("/:id", r.params.GalleryHandler.Delete, auth)
		galleries.POST("/:id/images", r.params.GalleryHandler.AddImage, auth)
		galleries.DELETE("/:id/images/:imageId", r.params.GalleryHandler.DeleteImage, auth)
	}

	documents := e.Group("/documents")
	{
		documents.GET("", r.params.DocumentHandler.List)
		documents.GET("/:id", r.params.DocumentHandler.Get)
		documents.POST("", r.params.DocumentHandler.Upload, auth)
		documents.POST("/external", r.params.DocumentHandler.RegisterExternal, auth)
		documents.DELETE("/:id", r.params.DocumentHandler.Delete, auth)
	}

	collaborations := e.Group("/collaborations")
	{
		// Submission is public; the review workflow is not.
		collaborations.POST("", r.params.CollaborationHandler.Submit)
		collaborations.GET("", r.params.CollaborationHandler.List, auth)
		collaborations.GET("/:id", r.params.CollaborationHandler.Get, auth)
		collaborations.PUT("/:id/status", r.params.CollaborationHandler.UpdateStatus, auth)
	}
}
