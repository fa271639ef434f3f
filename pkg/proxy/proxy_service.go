package proxy

import (
	"context"
	"net/http"
	"net/url"

	"github.com/rs/zerolog"
	"github.com/ryanuber/go-glob"

	"github.com/thebartekbanach/bandwidth-hero-proxy/pkg/filefetcher"
	"github.com/thebartekbanach/bandwidth-hero-proxy/pkg/headerpolicy"
	"github.com/thebartekbanach/bandwidth-hero-proxy/pkg/processor"
	"github.com/thebartekbanach/bandwidth-hero-proxy/pkg/relayerr"
)

// LandingMessage is returned for requests that carry no target url.
const LandingMessage = "bandwidth-hero-proxy"

type ProxyServiceConfig struct {
	AllowedDomains []string
}

type proxyService struct {
	config     ProxyServiceConfig
	fetcher    filefetcher.Fetcher
	transcoder processor.Transcoder
}

var _ ProxyService = (*proxyService)(nil)

func NewProxyService(config ProxyServiceConfig, fetcher filefetcher.Fetcher, transcoder processor.Transcoder) ProxyService {
	return &proxyService{
		config:     config,
		fetcher:    fetcher,
		transcoder: transcoder,
	}
}

func (p *proxyService) Handle(ctx context.Context, query url.Values, header http.Header, responseWriter ProxyResponseWriter) {
	logger := zerolog.Ctx(ctx)

	request, err := processor.ParseRequest(query)
	if err != nil {
		p.writeError(ctx, responseWriter, err, "")
		return
	}

	if !request.HasTarget() {
		responseWriter.WriteText(http.StatusOK, LandingMessage)
		return
	}

	target := request.TargetURL.String()
	if !p.isAllowedImageSourceDomain(request.TargetURL) {
		err := relayerr.New(relayerr.KindForbidden, "proxy.handle", "domain "+request.TargetURL.Hostname()+" is not allowed")
		p.writeError(ctx, responseWriter, err, target)
		return
	}

	payload, err := p.fetcher.Fetch(ctx, target, headerpolicy.OutboundHeaders(header))
	if err != nil {
		p.writeError(ctx, responseWriter, err, target)
		return
	}

	result, err := p.transcoder.Transcode(ctx, payload.Data, request)
	if err != nil {
		p.writeError(ctx, responseWriter, err, target)
		return
	}

	report := headerpolicy.NewSavingsReport(len(payload.Data), len(result.Data))
	logger.Debug().
		Str("url", target).
		Str("codec", request.Codec.String()).
		Bool("monochrome", request.Monochrome).
		Int("quality", request.Quality).
		Int64("original_size", report.OriginalSize).
		Int64("bytes_saved", report.BytesSaved).
		Msg("image transcoded")

	responseWriter.WriteOK(headerpolicy.ResponseHeaders(result.MimeType, report), result.Data)
}

func (p *proxyService) writeError(ctx context.Context, responseWriter ProxyResponseWriter, err error, target string) {
	kind := relayerr.KindOf(err)
	status := relayerr.StatusCode(kind)

	event := zerolog.Ctx(ctx).Warn()
	if status >= http.StatusInternalServerError {
		event = zerolog.Ctx(ctx).Error()
	}
	event.Err(err).Str("kind", string(kind)).Str("url", target).Int("status", status).Msg("relay request failed")

	responseWriter.WriteError(status, relayerr.PublicMessage(kind))
}

func (p *proxyService) isAllowedImageSourceDomain(sourceImageURL *url.URL) bool {
	if len(p.config.AllowedDomains) == 0 {
		return true
	}

	sourceImageDomain := sourceImageURL.Hostname()
	for _, allowedDomain := range p.config.AllowedDomains {
		if glob.Glob(allowedDomain, sourceImageDomain) {
			return true
		}
	}

	return false
}
