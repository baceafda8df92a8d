// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"membership/config"
	"membership/internal/delivery/api/middleware"
	"membership/internal/delivery/api/router/handler"
	"membership/internal/domain/constants"
	"membership/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	TierHandler       *handler.TierHandler
	SpendingHandler   *handler.SpendingHandler
	MembershipHandler *handler.MembershipHandler
	CardHandler       *handler.CardHandler
	AuthMiddleware    *middleware.AuthMiddleware
	Metrics           *metrics.Recorder `optional:"true"`
	Config            *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	tierHandler       *handler.TierHandler
	spendingHandler   *handler.SpendingHandler
	membershipHandler *handler.MembershipHandler
	cardHandler       *handler.CardHandler
	authMiddleware    *middleware.AuthMiddleware
	metrics           *metrics.Recorder
	config            *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		tierHandler:       params.TierHandler,
		spendingHandler:   params.SpendingHandler,
		membershipHandler: params.MembershipHandler,
		cardHandler:       params.CardHandler,
		authMiddleware:    params.AuthMiddleware,
		metrics:           params.Metrics,
		config:            params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	if r.metrics != nil && r.config.Metrics != nil && r.config.Metrics.Enabled {
		e.GET(r.config.Metrics.Path, echo.WrapHandler(r.metrics.Handler()))
	}

	// Every API v1 route is for staff only
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate)
	apiV1.Use(r.authMiddleware.RequireAnyRole(constants.RoleStaff, constants.RoleAdmin))

	apiV1.GET("/tiers", r.tierHandler.ListTiers)

	ordersGroup := apiV1.Group("/orders")
	{
		ordersGroup.POST("/:orderId/spending", r.spendingHandler.RecordOrderSpending)
		ordersGroup.GET("/:orderId/spending", r.spendingHandler.GetOrderSpending)
	}

	customersGroup := apiV1.Group("/customers/:customerId")
	{
		customersGroup.GET("/membership", r.membershipHandler.GetMembership)
		customersGroup.POST("/membership/evaluate", r.membershipHandler.EvaluateMembership)
		customersGroup.GET("/cards", r.membershipHandler.ListCustomerCards)
		customersGroup.GET("/loyalty", r.membershipHandler.GetLoyaltyRecord)
	}

	cardsGroup := apiV1.Group("/cards")
	{
		cardsGroup.GET("/:cardId", r.cardHandler.GetCard)
		cardsGroup.GET("/:cardId/qr", r.cardHandler.GetCardQR)
	}
}
