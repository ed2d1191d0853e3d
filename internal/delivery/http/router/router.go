// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"dindigul/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	MenuHandler     *handler.MenuHandler
	CartHandler     *handler.CartHandler
	AuthHandler     *handler.AuthHandler
	CheckoutHandler *handler.CheckoutHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	menuHandler     *handler.MenuHandler
	cartHandler     *handler.CartHandler
	authHandler     *handler.AuthHandler
	checkoutHandler *handler.CheckoutHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		menuHandler:     params.MenuHandler,
		cartHandler:     params.CartHandler,
		authHandler:     params.AuthHandler,
		checkoutHandler: params.CheckoutHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Menu catalog: static and read-only
	menuGroup := api.Group("/menu")
	{
		menuGroup.GET("", r.menuHandler.ListItems)
		menuGroup.GET("/categories", r.menuHandler.ListCategories)
	}

	// Cart store
	cartGroup := api.Group("/cart")
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.DELETE("", r.cartHandler.ClearCart)
		cartGroup.POST("/items", r.cartHandler.AddItem)
		cartGroup.PATCH("/items/:id", r.cartHandler.UpdateQuantity)
		cartGroup.DELETE("/items/:id", r.cartHandler.RemoveItem)
	}

	// Session store
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/signup", r.authHandler.Signup)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.GET("/me", r.authHandler.Me)
	}

	// Checkout flow
	checkoutGroup := api.Group("/checkout")
	{
		checkoutGroup.GET("", r.checkoutHandler.GetState)
		checkoutGroup.POST("", r.checkoutHandler.Begin)
		checkoutGroup.POST("/address", r.checkoutHandler.SubmitAddress)
		checkoutGroup.DELETE("", r.checkoutHandler.Cancel)
	}
}
