// Package metrics provides Prometheus metrics for the frame pipeline.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	framesDelivered = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "framecap",
		Name:      "frames_delivered_total",
		Help:      "Total frames delivered into the available queue",
	})

	framesDropped = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "framecap",
		Name:      "frames_dropped_total",
		Help:      "Total frames dropped from a full available queue",
	})

	poolFrames = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "framecap",
		Subsystem: "pool",
		Name:      "frames",
		Help:      "Current number of frames held by the pool",
	})

	poolReuse = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "framecap",
		Subsystem: "pool",
		Name:      "reuse_total",
		Help:      "Total acquisitions served by reusing a free pooled frame",
	})

	poolEvictions = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "framecap",
		Subsystem: "pool",
		Name:      "evictions_total",
		Help:      "Total frames evicted from a saturated pool",
	})

	convertDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "framecap",
		Subsystem: "convert",
		Name:      "duration_seconds",
		Help:      "Pixel format conversion latency by kernel and backend",
		Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 12),
	}, []string{"kernel", "backend"})
)

// IncFramesDelivered counts one frame handed to the available queue.
func IncFramesDelivered() { framesDelivered.Inc() }

// IncFramesDropped counts one frame discarded from a full queue.
func IncFramesDropped() { framesDropped.Inc() }

// SetPoolFrames records the current pool population.
func SetPoolFrames(n int) { poolFrames.Set(float64(n)) }

// IncPoolReuse counts one acquisition served from a free pooled frame.
func IncPoolReuse() { poolReuse.Inc() }

// IncPoolEvictions counts one eviction from a saturated pool.
func IncPoolEvictions() { poolEvictions.Inc() }

// ObserveConversion records one conversion's latency.
func ObserveConversion(kernel, backend string, d time.Duration) {
	convertDuration.WithLabelValues(kernel, backend).Observe(d.Seconds())
}
