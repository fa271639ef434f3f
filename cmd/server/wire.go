//go:build wireinject
// +build wireinject

package main

import (
	"github.com/gin-gonic/gin"
	"github.com/google/wire"
	"github.com/rs/zerolog"

	"github.com/thebartekbanach/bandwidth-hero-proxy/pkg/config"
	"github.com/thebartekbanach/bandwidth-hero-proxy/pkg/filefetcher"
	"github.com/thebartekbanach/bandwidth-hero-proxy/pkg/proxy"
)

func InitializeServer(cfg config.Config, logger zerolog.Logger) *gin.Engine {
	wire.Build(
		InitializeHTTPClient,
		filefetcher.NewHTTPFetcher,
		wire.Bind(new(filefetcher.Fetcher), new(*filefetcher.HTTPFetcher)),

		InitializeTranscoder,

		InitializeProxyConfig,
		proxy.NewProxyService,

		newRouter,
	)

	return &gin.Engine{}
}
