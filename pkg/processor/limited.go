package processor

import (
	"context"
	"runtime"

	"golang.org/x/sync/semaphore"

	"github.com/thebartekbanach/bandwidth-hero-proxy/pkg/relayerr"
)

// LimitedTranscoder bounds the number of transcodes running at once.
type LimitedTranscoder struct {
	next Transcoder
	sem  *semaphore.Weighted
}

var _ Transcoder = (*LimitedTranscoder)(nil)

// NewLimitedTranscoder uses runtime.NumCPU() slots when limit is not positive.
func NewLimitedTranscoder(next Transcoder, limit int) *LimitedTranscoder {
	if limit <= 0 {
		limit = runtime.NumCPU()
	}

	return &LimitedTranscoder{
		next: next,
		sem:  semaphore.NewWeighted(int64(limit)),
	}
}

func (t *LimitedTranscoder) Transcode(ctx context.Context, data []byte, request Request) (Result, error) {
	if err := t.sem.Acquire(ctx, 1); err != nil {
		return Result{}, relayerr.Wrap(relayerr.KindInternal, "processor.limit", "waiting for transcode slot", err)
	}
	defer t.sem.Release(1)

	return t.next.Transcode(ctx, data, request)
}
