package processor

import (
	"context"
	"net/url"
)

type Codec int

const (
	CodecWebP Codec = iota
	CodecJPEG
)

func (c Codec) MimeType() string {
	if c == CodecJPEG {
		return "image/jpeg"
	}
	return "image/webp"
}

func (c Codec) String() string {
	if c == CodecJPEG {
		return "jpeg"
	}
	return "webp"
}

// Request is the relay intent decoded from the query string.
// A nil TargetURL means there is nothing to relay.
type Request struct {
	TargetURL  *url.URL
	Codec      Codec
	Monochrome bool
	Quality    int
}

func (r Request) HasTarget() bool {
	return r.TargetURL != nil
}

type Result struct {
	Data     []byte
	MimeType string
}

type Transcoder interface {
	Transcode(ctx context.Context, data []byte, request Request) (Result, error)
}
