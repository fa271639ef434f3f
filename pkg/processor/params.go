package processor

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/thebartekbanach/bandwidth-hero-proxy/pkg/relayerr"
)

const DefaultQuality = 40

// ParseRequest reads the url, jpeg, bw and l parameters.
// A missing or unparsable url is not an error, it yields a Request without target.
func ParseRequest(query url.Values) (Request, error) {
	request := Request{
		TargetURL:  parseTargetURL(query.Get("url")),
		Codec:      CodecWebP,
		Monochrome: true,
		Quality:    DefaultQuality,
	}

	if raw := query.Get("jpeg"); raw != "" {
		jpeg, err := strconv.ParseBool(raw)
		if err != nil {
			return Request{}, paramError("jpeg", raw, err)
		}
		if jpeg {
			request.Codec = CodecJPEG
		}
	}

	if raw := query.Get("bw"); raw != "" {
		bw, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return Request{}, paramError("bw", raw, err)
		}
		request.Monochrome = bw != 0
	}

	if raw := query.Get("l"); raw != "" {
		level, err := strconv.ParseUint(raw, 10, 8)
		if err != nil {
			return Request{}, paramError("l", raw, err)
		}
		request.Quality = int(level)
	}

	return request, nil
}

func parseTargetURL(raw string) *url.URL {
	if raw == "" {
		return nil
	}

	target, err := url.Parse(raw)
	if err != nil || !target.IsAbs() || target.Host == "" {
		return nil
	}

	return target
}

func paramError(name, value string, err error) error {
	return relayerr.Wrap(relayerr.KindParams, "processor.parse", fmt.Sprintf("invalid %s parameter %q", name, value), err)
}
