package filefetcher

import (
	"context"
	"net/http"
)

// Payload is the fully read body of an origin response.
type Payload struct {
	Data        []byte
	ContentType string
	Size        int64
}

type Fetcher interface {
	Fetch(ctx context.Context, url string, header http.Header) (Payload, error)
}
