// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"sprout/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CheckoutHandler *handler.CheckoutHandler
	OrderHandler    *handler.OrderHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	checkoutHandler *handler.CheckoutHandler
	orderHandler    *handler.OrderHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		checkoutHandler: params.CheckoutHandler,
		orderHandler:    params.OrderHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Checkout attempt lifecycle
	checkoutGroup := e.Group("/checkout")
	{
		checkoutGroup.POST("", r.checkoutHandler.Start)
		checkoutGroup.GET("/:id", r.checkoutHandler.Get)
		checkoutGroup.POST("/:id/phone", r.checkoutHandler.RequestChallenge)
		checkoutGroup.POST("/:id/phone/resend", r.checkoutHandler.ResendChallenge)
		checkoutGroup.POST("/:id/code", r.checkoutHandler.SubmitCode)
		checkoutGroup.POST("/:id/address", r.checkoutHandler.SubmitAddress)
		checkoutGroup.POST("/:id/back", r.checkoutHandler.Back)
		checkoutGroup.POST("/:id/place", r.checkoutHandler.Place)
		checkoutGroup.DELETE("/:id", r.checkoutHandler.Abandon)
	}

	// Placed orders
	orderGroup := e.Group("/orders")
	{
		orderGroup.GET("", r.orderHandler.ListByCustomer)
		orderGroup.GET("/:id", r.orderHandler.Get)
		orderGroup.GET("/:id/qr", r.orderHandler.TrackingQR)
	}
}
