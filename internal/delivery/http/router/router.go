// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"renteasy/internal/delivery/http/middleware"
	"renteasy/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ProductHandler  *handler.ProductHandler
	OrderHandler    *handler.OrderHandler
	SessionHandler  *handler.SessionHandler
	AdminMiddleware *middleware.AdminMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	productHandler  *handler.ProductHandler
	orderHandler    *handler.OrderHandler
	sessionHandler  *handler.SessionHandler
	adminMiddleware *middleware.AdminMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		productHandler:  params.ProductHandler,
		orderHandler:    params.OrderHandler,
		sessionHandler:  params.SessionHandler,
		adminMiddleware: params.AdminMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public catalog routes
	e.GET("/products", r.productHandler.ListProducts)
	e.GET("/products/:id", r.productHandler.GetProduct)

	// Checkout routes
	orderGroup := e.Group("/orders")
	{
		orderGroup.POST("", r.orderHandler.SubmitOrder)
		orderGroup.GET("/current", r.orderHandler.CurrentOrder)
		orderGroup.GET("/:id", r.orderHandler.GetOrder)
		orderGroup.GET("/:id/qr", r.orderHandler.OrderQR)
	}

	// Admin routes; login is open, everything else requires an active session
	adminGroup := e.Group("/admin")
	{
		adminGroup.POST("/login", r.sessionHandler.Login)

		guarded := adminGroup.Group("")
		guarded.Use(r.adminMiddleware.RequireAdmin)
		{
			guarded.POST("/logout", r.sessionHandler.Logout)
			guarded.POST("/products", r.productHandler.CreateProduct)
			guarded.PUT("/products/:id", r.productHandler.UpdateProduct)
			guarded.DELETE("/products/:id", r.productHandler.DeleteProduct)
		}
	}
}
