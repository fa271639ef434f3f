package main

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/thebartekbanach/bandwidth-hero-proxy/pkg/relayerr"
)

const authRealm = "Bandwidth-Hero Compression Service"

func basicAuth(login, password string) gin.HandlerFunc {
	check := gin.BasicAuthForRealm(gin.Accounts{login: password}, authRealm)

	return func(c *gin.Context) {
		check(c)

		logger := zerolog.Ctx(c.Request.Context())
		if c.IsAborted() {
			logger.Warn().Str("client_ip", c.ClientIP()).Str("path", c.Request.URL.Path).Msg("authentication failed")
			c.Writer.WriteString(relayerr.PublicMessage(relayerr.KindAuth))
			return
		}

		logger.Debug().Str("user", c.GetString(gin.AuthUserKey)).Msg("authenticated")
	}
}
