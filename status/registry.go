package status

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
	"sync/atomic"
)

// Metric keys
const (
	KeyFramesRendered = "frames.rendered"
	KeyChimesPlayed   = "audio.chimes"
	KeyRenderFPS      = "render.fps"
	KeySimYears       = "sim.years"

	revolutionPrefix = "revolutions."
)

// Registry is the central run metrics facade.
// Callers cache pointers once; frame loops write directly to atomics.
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// Revolutions returns the completed-revolution counter for a body
func (r *Registry) Revolutions(name string) *atomic.Int64 {
	return r.Ints.Get(revolutionPrefix + name)
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Floats.Count()
}

// Summary renders every metric as key=value pairs sorted by key across both maps
func (r *Registry) Summary() string {
	values := make(map[string]string, r.TotalCount())
	r.Ints.Range(func(key string, v *atomic.Int64) {
		values[key] = strconv.FormatInt(v.Load(), 10)
	})
	r.Floats.Range(func(key string, v *AtomicFloat) {
		values[key] = fmt.Sprintf("%.2f", v.Load())
	})

	parts := make([]string, 0, len(values))
	for _, key := range slices.Sorted(maps.Keys(values)) {
		parts = append(parts, key+"="+values[key])
	}
	return strings.Join(parts, " ")
}
