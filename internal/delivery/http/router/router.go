// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"gamehub/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CatalogHandler  *handler.CatalogHandler
	PurchaseHandler *handler.PurchaseHandler
	LibraryHandler  *handler.LibraryHandler
	DiscountHandler *handler.DiscountHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	catalogHandler  *handler.CatalogHandler
	purchaseHandler *handler.PurchaseHandler
	libraryHandler  *handler.LibraryHandler
	discountHandler *handler.DiscountHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		catalogHandler:  params.CatalogHandler,
		purchaseHandler: params.PurchaseHandler,
		libraryHandler:  params.LibraryHandler,
		discountHandler: params.DiscountHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Catalog routes
	gameGroup := e.Group("/games")
	{
		gameGroup.GET("", r.catalogHandler.ListGames)
		gameGroup.GET("/:gameId", r.catalogHandler.GetGame)
		gameGroup.GET("/:gameId/quote", r.purchaseHandler.Quote)
	}

	// Purchase routes
	e.POST("/purchases", r.purchaseHandler.Purchase)

	// Library and wishlist routes, scoped per user
	userGroup := e.Group("/users/:userId")
	{
		userGroup.GET("/library", r.libraryHandler.ListLibrary)
		userGroup.POST("/wishlist", r.libraryHandler.AddToWishlist)
		userGroup.DELETE("/wishlist/:entryId", r.libraryHandler.RemoveFromWishlist)
		userGroup.GET("/games/:gameId/status", r.libraryHandler.GetStatus)
	}

	// Discount administration routes
	discountGroup := e.Group("/discounts")
	{
		discountGroup.POST("", r.discountHandler.CreateDiscount)
		discountGroup.GET("", r.discountHandler.ListDiscounts)
		discountGroup.GET("/:discountId", r.discountHandler.GetDiscount)
	}
}
