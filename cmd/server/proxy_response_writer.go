package main

import (
	"net/http"
	"strconv"
)

type proxyResponseWriter struct {
	w http.ResponseWriter
}

func (w *proxyResponseWriter) WriteOK(header http.Header, body []byte) {
	for key, values := range header {
		w.w.Header()[key] = values
	}
	w.w.WriteHeader(http.StatusOK)
	w.w.Write(body)
}

func (w *proxyResponseWriter) WriteText(code int, message string) {
	w.w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.w.Header().Set("Content-Length", strconv.Itoa(len(message)))
	w.w.WriteHeader(code)
	w.w.Write([]byte(message))
}

func (w *proxyResponseWriter) WriteError(code int, message string) {
	w.WriteText(code, message)
}
