// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"wardrobe/internal/delivery/http/middleware"
	"wardrobe/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler           *handler.AuthHandler
	UserHandler           *handler.UserHandler
	ProductHandler        *handler.ProductHandler
	WeatherHandler        *handler.WeatherHandler
	RecommendationHandler *handler.RecommendationHandler
	AuthMiddleware        *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler           *handler.AuthHandler
	userHandler           *handler.UserHandler
	productHandler        *handler.ProductHandler
	weatherHandler        *handler.WeatherHandler
	recommendationHandler *handler.RecommendationHandler
	authMiddleware        *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:           params.AuthHandler,
		userHandler:           params.UserHandler,
		productHandler:        params.ProductHandler,
		weatherHandler:        params.WeatherHandler,
		recommendationHandler: params.RecommendationHandler,
		authMiddleware:        params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.Refresh)
		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)
	}

	// Profile routes that require authentication
	userGroup := e.Group("/users")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/profile", r.userHandler.GetProfile)
		userGroup.PUT("/profile", r.userHandler.UpdateProfile)
		userGroup.DELETE("/profile", r.userHandler.DeleteAccount)
	}

	// Public catalog routes
	productGroup := e.Group("/products")
	{
		productGroup.GET("", r.productHandler.List)
		productGroup.GET("/search", r.productHandler.Search)
		productGroup.GET("/categories", r.productHandler.Categories)
		productGroup.GET("/brands", r.productHandler.Brands)
		productGroup.GET("/:id", r.productHandler.Get)
	}

	// Public weather routes
	weatherGroup := e.Group("/weather")
	{
		weatherGroup.GET("/current/:city", r.weatherHandler.Current)
		weatherGroup.GET("/forecast/:city", r.weatherHandler.Forecast)
	}

	// Recommendation routes that require authentication
	recGroup := e.Group("/recommendations")
	recGroup.Use(r.authMiddleware.Authenticate)
	{
		recGroup.POST("", r.recommendationHandler.Generate)
		recGroup.GET("", r.recommendationHandler.List)
		recGroup.GET("/:id", r.recommendationHandler.Get)
		recGroup.PUT("/:id", r.recommendationHandler.Update)
		recGroup.DELETE("/:id", r.recommendationHandler.Delete)
		recGroup.POST("/:id/regenerate", r.recommendationHandler.Regenerate)
	}
}
