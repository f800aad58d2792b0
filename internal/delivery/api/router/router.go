// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"truefans/internal/delivery/api/middleware"
	"truefans/internal/delivery/api/router/handler"
	"truefans/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	PassHandler       *handler.PassHandler
	RestaurantHandler *handler.RestaurantHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	passHandler       *handler.PassHandler
	restaurantHandler *handler.RestaurantHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		passHandler:       params.PassHandler,
		restaurantHandler: params.RestaurantHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	passesGroup := apiV1.Group("/passes")
	{
		// Registration works with or without a diner account.
		passesGroup.POST("", r.passHandler.IssuePass, r.authMiddleware.OptionalAuthenticate)
		passesGroup.GET("/me", r.passHandler.ListMyPasses, r.authMiddleware.Authenticate, r.authMiddleware.RequireRole(entity.RoleDiner))
		passesGroup.POST("/redeem", r.passHandler.RedeemPass, r.authMiddleware.Authenticate, r.authMiddleware.RequireRole(entity.RoleStaff, entity.RoleOwner))
		passesGroup.GET("/:passId/wallet", r.passHandler.GetWallet)

		// Owner or staff of the bound restaurant; enforced by the use case.
		ownedGroup := passesGroup.Group("/:passId", r.authMiddleware.Authenticate)
		{
			ownedGroup.GET("", r.passHandler.GetPass)
			ownedGroup.GET("/qr", r.passHandler.GetQRCode)
			ownedGroup.PUT("/counters", r.passHandler.UpdateCounters)
			ownedGroup.PUT("/status", r.passHandler.UpdateStatus, r.authMiddleware.RequireRole(entity.RoleStaff, entity.RoleOwner))
		}
	}

	restaurantsGroup := apiV1.Group("/restaurants")
	{
		restaurantsGroup.GET("/nearby", r.restaurantHandler.Nearby)
	}
}
