// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	CompanyHandler *handler.CompanyHandler
	AuthMiddleware *middleware.AuthMiddleware
	RateLimit      *middleware.RateLimitMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	companyHandler *handler.CompanyHandler
	authMiddleware *middleware.AuthMiddleware
	rateLimit      *middleware.RateLimitMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		companyHandler: params.CompanyHandler,
		authMiddleware: params.AuthMiddleware,
		rateLimit:      params.RateLimit,
	}
}

// RegisterRoutes sets up all the API routes for the application. Each route
// is registered under exactly one access level: public, authenticated, or
// permission-gated; there is no per-handler opt-out.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		// Public: the only way in. Login carries the rate limiter.
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login, r.rateLimit.Limit)
		// Refresh authenticates with the cookie, not the access token.
		authGroup.GET("/refresh", r.authHandler.Refresh)

		// Authenticated.
		authGroup.POST("/logout", r.authHandler.Logout, r.authMiddleware.Authenticate)
		authGroup.GET("/account", r.authHandler.Account, r.authMiddleware.Authenticate)
	}

	// User self-service routes.
	userGroup := e.Group("/users")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.POST("/password", r.authHandler.ChangePassword)
	}

	// Company routes: authenticated and permission-gated per route.
	companyGroup := e.Group("/companies")
	companyGroup.Use(r.authMiddleware.Authenticate)
	companyGroup.Use(r.authMiddleware.RequirePermission())
	{
		companyGroup.GET("", r.companyHandler.List)
		companyGroup.POST("", r.companyHandler.Create)
	}
}
