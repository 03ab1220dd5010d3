package http

import (
	"mpesa-reconciler/internal/controller/http/handlers"
	"mpesa-reconciler/pkg/health"
	"mpesa-reconciler/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Router struct {
	callback       *handlers.CallbackHandler
	healthRegistry *health.Registry
}

func NewRouter(callback *handlers.CallbackHandler, healthRegistry *health.Registry) *Router {
	return &Router{
		callback:       callback,
		healthRegistry: healthRegistry,
	}
}

func (r *Router) SetUp(engine *gin.Engine) {
	// Health checks (Kubernetes-style)
	engine.GET("/health/live", health.LivenessHandler())
	engine.GET("/health/ready", health.ReadinessHandler(r.healthRegistry, health.DefaultTimeout))

	// Prometheus metrics
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	// Receive-only webhook endpoint; the engine answers 405 for other methods.
	engine.POST("/payments/mpesa/callback", r.callback.Receive)
}
