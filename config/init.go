package config

import (
	"log/slog"

	"salestracker/metrics"
	"salestracker/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// InitApp builds the gin engine with CORS and the request middleware chain.
func InitApp(cfg *Config, log *slog.Logger, m *metrics.Metrics) *gin.Engine {
	if cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	configCors := cors.DefaultConfig()
	configCors.AddAllowHeaders(middleware.RequestIDHeader)
	configCors.AddExposeHeaders(middleware.RequestIDHeader)
	if len(cfg.CORSAllowedOrigins) > 0 {
		configCors.AllowOrigins = cfg.CORSAllowedOrigins
	} else {
		configCors.AllowAllOrigins = true
	}

	router.Use(
		gin.Recovery(),
		cors.New(configCors),
		middleware.RequestID(),
		middleware.Logging(log),
		middleware.Metrics(m),
	)
	router.SetTrustedProxies(nil)

	return router
}
