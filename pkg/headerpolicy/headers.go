package headerpolicy

import (
	"net/http"
	"strconv"
)

const (
	UserAgent = "Bandwidth-Hero Compressor"
	Via       = "1.1 bandwidth-hero"

	HeaderOriginalSize = "X-Original-Size"
	HeaderBytesSaved   = "X-Bytes-Saved"
)

// forwardedHeaders are the only inbound headers passed on to the origin.
var forwardedHeaders = []string{"Cookie", "DNT", "Referer"}

// OutboundHeaders derives the header set sent to the origin from the client's headers.
func OutboundHeaders(inbound http.Header) http.Header {
	outbound := http.Header{}

	for _, name := range forwardedHeaders {
		copyHeader(outbound, inbound, name)
	}
	copyHeader(outbound, inbound, "X-Forwarded-For")

	outbound.Set("User-Agent", UserAgent)
	outbound.Set("Via", Via)

	return outbound
}

// SavingsReport compares fetched and transcoded sizes. BytesSaved is negative
// when transcoding made the image bigger.
type SavingsReport struct {
	OriginalSize   int64
	CompressedSize int64
	BytesSaved     int64
}

func NewSavingsReport(originalSize, compressedSize int) SavingsReport {
	return SavingsReport{
		OriginalSize:   int64(originalSize),
		CompressedSize: int64(compressedSize),
		BytesSaved:     int64(originalSize) - int64(compressedSize),
	}
}

// ResponseHeaders builds the headers of a successful relay response.
func ResponseHeaders(mimeType string, report SavingsReport) http.Header {
	header := http.Header{}
	header.Set("Content-Encoding", "identity")
	header.Set("Content-Type", mimeType)
	header.Set("Content-Length", strconv.FormatInt(report.CompressedSize, 10))
	header.Set(HeaderOriginalSize, strconv.FormatInt(report.OriginalSize, 10))
	header.Set(HeaderBytesSaved, strconv.FormatInt(report.BytesSaved, 10))
	return header
}

func copyHeader(dst, src http.Header, name string) {
	values := src.Values(name)
	if len(values) == 0 {
		return
	}

	key := http.CanonicalHeaderKey(name)
	dst[key] = append([]string(nil), values...)
}
