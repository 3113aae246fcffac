package main

import (
	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-push-fanout/internal/config"
	"github.com/KasumiMercury/primind-push-fanout/internal/handler"
	"github.com/KasumiMercury/primind-push-fanout/internal/health"
	"github.com/KasumiMercury/primind-push-fanout/internal/observability/logging"
	"github.com/KasumiMercury/primind-push-fanout/internal/observability/metrics"
	"github.com/KasumiMercury/primind-push-fanout/internal/observability/middleware"
)

const moduleName = logging.Module("push-fanout")

type routerDeps struct {
	cors          config.CORSConfig
	httpMetrics   *metrics.HTTPMetrics
	fanoutHandler *handler.FanoutHandler
	healthChecker *health.Checker
}

func newRouter(deps routerDeps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Gin(middleware.GinConfig{
		SkipPaths:  []string{"/health", "/health/live", "/health/ready", "/grpc.health.v1.Health/Check"},
		Module:     moduleName,
		TracerName: "github.com/KasumiMercury/primind-push-fanout/internal/observability/middleware",
		JobNameResolver: func(c *gin.Context) string {
			if taskName := c.Request.Header.Get("X-CloudTasks-TaskName"); taskName != "" {
				return taskName
			}
			return ""
		},
		HTTPMetrics: deps.httpMetrics,
	}))
	r.Use(middleware.PanicRecoveryGin())
	r.Use(middleware.CORS(middleware.CORSConfig{
		AllowOrigin:  deps.cors.AllowOrigin,
		AllowHeaders: deps.cors.AllowHeaders,
	}))

	r.GET("/health/live", deps.healthChecker.LiveHandler())
	r.GET("/health/ready", deps.healthChecker.ReadyHandler())
	r.GET("/health", deps.healthChecker.ReadyHandler())
	deps.healthChecker.RegisterGRPC(r)

	// Legacy edge-function path used by existing web clients.
	r.POST("/functions/v1/send-push-notification", deps.fanoutHandler.HandleFanout)

	v1 := r.Group("/api/v1")
	{
		v1.POST("/notifications/fanout", deps.fanoutHandler.HandleFanout)
		v1.POST("/notifications/redrive", deps.fanoutHandler.HandleRedrive)
	}

	return r
}
