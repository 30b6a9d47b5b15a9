package colidx

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting codec metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordEncode is called after each block encode. rawBytes is the size
	// of the input values and validity, encodedBytes the size of the block.
	RecordEncode(rawBytes, encodedBytes int, duration time.Duration, err error)

	// RecordDecode is called after each block decode. length is the number
	// of decoded indices, zero on failure.
	RecordDecode(length int, duration time.Duration, err error)

	// RecordRemap is called after each dictionary remap.
	RecordRemap(length int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordEncode(int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordDecode(int, time.Duration, error)      {}
func (NoopMetricsCollector) RecordRemap(int, time.Duration, error)       {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	EncodeCount       atomic.Int64
	EncodeErrors      atomic.Int64
	EncodeRawBytes    atomic.Int64
	EncodeOutputBytes atomic.Int64
	DecodeCount       atomic.Int64
	DecodeErrors      atomic.Int64
	DecodeIndices     atomic.Int64
	DecodeTotalNanos  atomic.Int64
	RemapCount        atomic.Int64
	RemapErrors       atomic.Int64
	RemapIndices      atomic.Int64
}

// RecordEncode implements MetricsCollector.
func (b *BasicMetricsCollector) RecordEncode(rawBytes, encodedBytes int, _ time.Duration, err error) {
	b.EncodeCount.Add(1)
	if err != nil {
		b.EncodeErrors.Add(1)
		return
	}
	b.EncodeRawBytes.Add(int64(rawBytes))
	b.EncodeOutputBytes.Add(int64(encodedBytes))
}

// RecordDecode implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDecode(length int, duration time.Duration, err error) {
	b.DecodeCount.Add(1)
	b.DecodeTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.DecodeErrors.Add(1)
		return
	}
	b.DecodeIndices.Add(int64(length))
}

// RecordRemap implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRemap(length int, _ time.Duration, err error) {
	b.RemapCount.Add(1)
	if err != nil {
		b.RemapErrors.Add(1)
		return
	}
	b.RemapIndices.Add(int64(length))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	s := BasicMetricsStats{
		EncodeCount:   b.EncodeCount.Load(),
		EncodeErrors:  b.EncodeErrors.Load(),
		DecodeCount:   b.DecodeCount.Load(),
		DecodeErrors:  b.DecodeErrors.Load(),
		DecodeIndices: b.DecodeIndices.Load(),
		RemapCount:    b.RemapCount.Load(),
		RemapErrors:   b.RemapErrors.Load(),
		RemapIndices:  b.RemapIndices.Load(),
	}
	if raw := b.EncodeRawBytes.Load(); raw > 0 {
		s.CompressionRatio = float64(b.EncodeOutputBytes.Load()) / float64(raw)
	}
	if n := b.DecodeCount.Load(); n > 0 {
		s.DecodeAvgNanos = b.DecodeTotalNanos.Load() / n
	}
	return s
}

// BasicMetricsStats is a snapshot of metrics from BasicMetricsCollector.
type BasicMetricsStats struct {
	EncodeCount      int64
	EncodeErrors     int64
	CompressionRatio float64
	DecodeCount      int64
	DecodeErrors     int64
	DecodeIndices    int64
	DecodeAvgNanos   int64
	RemapCount       int64
	RemapErrors      int64
	RemapIndices     int64
}
