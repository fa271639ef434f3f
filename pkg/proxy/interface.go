package proxy

import (
	"context"
	"net/http"
	"net/url"
)

type ProxyResponseWriter interface {
	WriteOK(header http.Header, body []byte)
	WriteText(code int, message string)
	WriteError(code int, message string)
}

type ProxyService interface {
	Handle(ctx context.Context, query url.Values, header http.Header, responseWriter ProxyResponseWriter)
}
