package status

import (
	"fmt"
	"sort"
	"strings"
	"sync/atomic"
)

// matchPrefix marks counters that restart with each match
const matchPrefix = "match."

// Metric keys published by the game driver
const (
	KeyFrames        = "engine.frames"
	KeyCollisions    = "match.collisions"
	KeyPushes        = "match.pushes"
	KeyChargedPushes = "match.charged_pushes"
	KeyKnockouts     = "match.knockouts"
	KeyTermsPlayed   = "match.terms"
	KeyFrameDelta    = "engine.dt"
	KeyMatchID       = "match.id"
	KeyLastEvent     = "match.last_event"
)

// Registry is the central metrics facade
// The driver caches pointers at start-up; the frame loop writes straight to the atomics
type Registry struct {
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// ResetMatch zeroes the per-match counters, keeping engine-wide ones
func (r *Registry) ResetMatch() {
	r.Ints.Range(func(k string, v *atomic.Int64) {
		if strings.HasPrefix(k, matchPrefix) {
			v.Store(0)
		}
	})
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Line renders every metric as "key=value" pairs sorted by key, for a one-row debug display
func (r *Registry) Line() string {
	var parts []string
	r.Ints.Range(func(k string, v *atomic.Int64) {
		parts = append(parts, fmt.Sprintf("%s=%d", k, v.Load()))
	})
	r.Floats.Range(func(k string, v *AtomicFloat) {
		parts = append(parts, fmt.Sprintf("%s=%.3f", k, v.Get()))
	})
	r.Strings.Range(func(k string, v *AtomicString) {
		parts = append(parts, fmt.Sprintf("%s=%s", k, v.Load()))
	})
	sort.Strings(parts)
	return strings.Join(parts, " ")
}
