package main

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/thebartekbanach/bandwidth-hero-proxy/pkg/proxy"
)

func handleRequest(proxyService proxy.ProxyService, timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		processingCtx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		proxyService.Handle(processingCtx, c.Request.URL.Query(), c.Request.Header, &proxyResponseWriter{c.Writer})
	}
}

func handleNotFound(c *gin.Context) {
	writer := proxyResponseWriter{c.Writer}
	writer.WriteError(404, "not found")
}
