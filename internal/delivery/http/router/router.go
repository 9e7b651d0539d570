// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"pklradar/config"
	"pklradar/internal/delivery/http/middleware"
	"pklradar/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	roleVendor = "vendor"
	roleAdmin  = "admin"
)

type RouterParams struct {
	fx.In

	Config              *config.Config
	VendorHandler       *handler.VendorHandler
	LocationHandler     *handler.LocationHandler
	SearchHandler       *handler.SearchHandler
	FavoriteHandler     *handler.FavoriteHandler
	NotificationHandler *handler.NotificationHandler
	TestHandler         *handler.TestHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	cfg                 *config.Config
	vendorHandler       *handler.VendorHandler
	locationHandler     *handler.LocationHandler
	searchHandler       *handler.SearchHandler
	favoriteHandler     *handler.FavoriteHandler
	notificationHandler *handler.NotificationHandler
	testHandler         *handler.TestHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cfg:                 params.Config,
		vendorHandler:       params.VendorHandler,
		locationHandler:     params.LocationHandler,
		searchHandler:       params.SearchHandler,
		favoriteHandler:     params.FavoriteHandler,
		notificationHandler: params.NotificationHandler,
		testHandler:         params.TestHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public vendor discovery
	e.GET("/vendors", r.searchHandler.ListActiveVendors)
	e.GET("/vendors/:id/live", r.vendorHandler.GetLive)
	e.GET("/vendors/:id/qris", r.vendorHandler.GetPaymentQR)

	// Vendor routes that require authentication and "vendor" role
	vendorGroup := e.Group("/vendor")
	vendorGroup.Use(r.authMiddleware.Authenticate)
	vendorGroup.Use(r.authMiddleware.RequireRole(roleVendor))
	{
		vendorGroup.POST("/profile", r.vendorHandler.CreateProfile)
		vendorGroup.GET("/profile", r.vendorHandler.GetProfile)
		vendorGroup.PATCH("/profile", r.vendorHandler.UpdateProfile)
		vendorGroup.POST("/location", r.locationHandler.UpdateVendorLocation)
		vendorGroup.POST("/deactivate", r.locationHandler.DeactivateVendor)
		vendorGroup.GET("/locations", r.locationHandler.GetVendorLocationHistory)
		vendorGroup.GET("/stats", r.vendorHandler.GetDailyStats)
	}

	// Buyer routes that require authentication
	buyerGroup := e.Group("/buyer")
	buyerGroup.Use(r.authMiddleware.Authenticate)
	{
		buyerGroup.POST("/location", r.locationHandler.UpdateBuyerLocation)
		buyerGroup.GET("/favorites", r.favoriteHandler.ListFavorites)
		buyerGroup.POST("/favorites/:id", r.favoriteHandler.AddFavorite)
		buyerGroup.DELETE("/favorites/:id", r.favoriteHandler.RemoveFavorite)
		buyerGroup.GET("/notifications", r.notificationHandler.ListNotifications)
		buyerGroup.GET("/notifications/unread", r.notificationHandler.CountUnread)
		buyerGroup.POST("/notifications/:id/read", r.notificationHandler.MarkRead)
	}

	// Admin routes that require authentication and "admin" role
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(roleAdmin))
	{
		adminGroup.PATCH("/vendors/:id/verification", r.vendorHandler.SetVerification)
	}

	// Test routes for middleware validation, enabled per environment
	if r.cfg.TestRoutes != nil && r.cfg.TestRoutes.Enabled {
		testGroup := e.Group("/test")
		{
			testGroup.GET("/public", r.testHandler.TestPublicEndpoint)
			testGroup.GET("/auth", r.testHandler.TestAuthMiddleware, r.authMiddleware.Authenticate)
		}
	}
}
