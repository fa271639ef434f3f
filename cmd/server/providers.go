package main

import (
	"net/http"

	"github.com/thebartekbanach/bandwidth-hero-proxy/pkg/config"
	"github.com/thebartekbanach/bandwidth-hero-proxy/pkg/filefetcher"
	"github.com/thebartekbanach/bandwidth-hero-proxy/pkg/processor"
	nativeprocessor "github.com/thebartekbanach/bandwidth-hero-proxy/pkg/processor/native"
	"github.com/thebartekbanach/bandwidth-hero-proxy/pkg/proxy"
)

func InitializeHTTPClient(cfg config.Config) *http.Client {
	return filefetcher.NewHTTPClient(filefetcher.ClientConfig{
		Timeout:      cfg.FetchTimeout,
		MaxRedirects: cfg.MaxRedirects,
	})
}

func InitializeTranscoder(cfg config.Config) processor.Transcoder {
	return processor.NewLimitedTranscoder(nativeprocessor.NewTranscoder(), cfg.MaxConcurrentTranscodes)
}

func InitializeProxyConfig(cfg config.Config) proxy.ProxyServiceConfig {
	return proxy.ProxyServiceConfig{
		AllowedDomains: cfg.AllowedDomains,
	}
}
