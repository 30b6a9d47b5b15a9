package codec

import (
	"context"
	"runtime"

	"github.com/hupe1980/colidx"
	"github.com/hupe1980/colidx/internal/simd"
	"github.com/hupe1980/colidx/resource"
)

type options struct {
	logger      *colidx.Logger
	metrics     colidx.MetricsCollector
	compression Compression
	minWidth    uint8
	concurrency int
	memo        *DictionaryMemo
	resources   *resource.Controller
}

func defaultOptions() options {
	return options{
		logger:      colidx.NoopLogger(),
		metrics:     colidx.NoopMetricsCollector{},
		compression: CompressionLZ4,
		minWidth:    1,
		concurrency: runtime.GOMAXPROCS(0),
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// logKernel reports the reduction kernel the kernels dispatch to.
func logKernel(l *colidx.Logger) {
	l.LogKernel(context.Background(), simd.ActiveKernel().String(), simd.IsOverridden())
}

// Option configures an Encoder, a Decoder or Remap.
type Option func(*options)

// WithLogger sets the logger. A nil logger disables logging.
func WithLogger(l *colidx.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = colidx.NoopLogger()
		}
		o.logger = l
	}
}

// WithMetrics sets the metrics collector. A nil collector disables metrics.
func WithMetrics(m colidx.MetricsCollector) Option {
	return func(o *options) {
		if m == nil {
			m = colidx.NoopMetricsCollector{}
		}
		o.metrics = m
	}
}

// WithCompression selects the payload compression used by the Encoder.
//
// Default: CompressionLZ4.
func WithCompression(c Compression) Option {
	return func(o *options) {
		o.compression = c
	}
}

// WithMinWidth sets the smallest byte width the Encoder and Remap narrow
// values to. It must be 1, 2, 4 or 8.
//
// Default: 1.
func WithMinWidth(w uint8) Option {
	return func(o *options) {
		o.minWidth = w
	}
}

// WithConcurrency bounds the number of blocks DecodeAll decodes at once.
// Values below one mean one.
//
// Default: GOMAXPROCS.
func WithConcurrency(n int) Option {
	return func(o *options) {
		o.concurrency = max(n, 1)
	}
}

// WithMemo makes the Decoder take dictionary lengths from memo. A memo entry
// for a block's dictionary id overrides the length stored in the block.
func WithMemo(m *DictionaryMemo) Option {
	return func(o *options) {
		o.memo = m
	}
}

// WithResourceController makes the Decoder account decode memory, workers
// and IO against rc. rc may be shared between decoders.
func WithResourceController(rc *resource.Controller) Option {
	return func(o *options) {
		o.resources = rc
	}
}
