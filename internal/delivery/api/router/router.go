// Package router wires the control API routes.
package router

import (
	"pushkit/internal/delivery/api/router/handler"
	"pushkit/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	RegistrationHandler *handler.RegistrationHandler
	StreamHandler       *handler.StreamHandler
	PushHandler         *handler.PushHandler
	Metrics             *metrics.Metrics `optional:"true"`
}

// router holds all the handlers that need to be registered.
type router struct {
	registrationHandler *handler.RegistrationHandler
	streamHandler       *handler.StreamHandler
	pushHandler         *handler.PushHandler
	metrics             *metrics.Metrics
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		registrationHandler: params.RegistrationHandler,
		streamHandler:       params.StreamHandler,
		pushHandler:         params.PushHandler,
		metrics:             params.Metrics,
	}
}

// RegisterRoutes sets up the control API routes.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	if reg := r.metrics.Registry(); reg != nil {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})))
	}

	// Pub/Sub push subscription endpoint
	e.POST("/push", r.pushHandler.HandlePush)

	apiV1 := e.Group("/api/v1")

	registrationGroup := apiV1.Group("/registration")
	{
		registrationGroup.POST("", r.registrationHandler.Register)
		registrationGroup.DELETE("", r.registrationHandler.Unregister)
		registrationGroup.GET("", r.registrationHandler.GetState)
		registrationGroup.POST("/token", r.registrationHandler.RefreshToken)
	}

	streamsGroup := apiV1.Group("/streams")
	{
		streamsGroup.POST("/:kind/events", r.streamHandler.Enqueue)
		streamsGroup.POST("/:kind/flush", r.streamHandler.Flush)
		streamsGroup.GET("/:kind", r.streamHandler.Status)
	}

	apiV1.GET("/analytics", r.streamHandler.GetAnalytics)
	apiV1.PUT("/analytics", r.streamHandler.SetAnalytics)
}
