package app

import (
	"mpesa-reconciler/pkg/logger"
	"mpesa-reconciler/pkg/metrics"

	"github.com/gin-gonic/gin"
)

func NewGinEngine(l *logger.Logger) *gin.Engine {
	engine := gin.New()
	// The webhook endpoint is receive-only; a GET must get 405, not 404.
	engine.HandleMethodNotAllowed = true
	engine.Use(metrics.GinMiddleware(), logger.CorrelationMiddleware(), l.GinBodyLogger(), gin.Recovery())
	return engine
}
