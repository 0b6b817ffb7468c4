// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"quoteapi/internal/delivery/http/middleware"
	"quoteapi/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	QuoteHandler   *handler.QuoteHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	quoteHandler   *handler.QuoteHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		quoteHandler:   params.QuoteHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authenticated := r.authMiddleware.Authenticate

	users := e.Group("/users")
	{
		users.POST("/register", r.userHandler.Register)
		users.POST("/login", r.userHandler.Login)
		users.GET("/info", r.userHandler.GetInfo, authenticated)
		users.PUT("/change_info", r.userHandler.ChangeInfo, authenticated)
		users.PUT("/change_password", r.userHandler.ChangePassword, authenticated)
		users.DELETE("", r.userHandler.DeleteAccount, authenticated)
	}

	// Echo matches static segments before params, so /search never reaches /:userId.
	quotes := e.Group("/quotes")
	{
		quotes.GET("", r.quoteHandler.ListLatest)
		quotes.GET("/search", r.quoteHandler.Search)
		quotes.GET("/:userId", r.quoteHandler.ListByUser)
		quotes.GET("/:userId/:id", r.quoteHandler.GetByUser)
		quotes.POST("", r.quoteHandler.Create, authenticated)
		quotes.PUT("/:id", r.quoteHandler.Update, authenticated)
		quotes.DELETE("/:id", r.quoteHandler.Delete, authenticated)
	}
}
