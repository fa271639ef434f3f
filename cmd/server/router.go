package main

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/thebartekbanach/bandwidth-hero-proxy/pkg/config"
	"github.com/thebartekbanach/bandwidth-hero-proxy/pkg/proxy"
)

func newRouter(cfg config.Config, logger zerolog.Logger, proxyService proxy.ProxyService) *gin.Engine {
	if cfg.LogLevel == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(requestLogger(logger))

	if cfg.AuthEnabled() {
		engine.Use(basicAuth(cfg.Login, cfg.Password))
	} else {
		logger.Warn().Msg("LOGIN and PASSWORD not set, authentication disabled")
	}

	engine.GET("/", handleRequest(proxyService, cfg.RequestTimeout))
	engine.NoRoute(handleNotFound)

	return engine
}

// requestLogger stores a request scoped logger in the request context.
func requestLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestLogger := logger.With().Str("request_id", uuid.NewString()).Logger()
		c.Request = c.Request.WithContext(requestLogger.WithContext(c.Request.Context()))

		c.Next()

		requestLogger.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Int("size", c.Writer.Size()).
			Dur("duration", time.Since(start)).
			Msg("request handled")
	}
}
