// Package status collects the runtime counters of a page session
package status

import "sync/atomic"

// Metric keys
const (
	Frames           = "frames"
	Resizes          = "resizes"
	MessagesSent     = "messages_sent"
	DeliveryFailures = "delivery_failures"
	LinksOpened      = "links_opened"
	FrameMillis      = "frame_ms"
)

// Registry holds named counters and gauges
// The frame loop caches pointers once; updates are plain atomic writes
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// Len returns the number of registered metrics
func (r *Registry) Len() int {
	return r.Ints.Len() + r.Floats.Len()
}

// Attrs returns every metric as alternating key and value, counters first, for slog
func (r *Registry) Attrs() []any {
	attrs := make([]any, 0, 2*r.Len())
	r.Ints.Range(func(key string, v *atomic.Int64) {
		attrs = append(attrs, key, v.Load())
	})
	r.Floats.Range(func(key string, v *AtomicFloat) {
		attrs = append(attrs, key, v.Get())
	})
	return attrs
}
