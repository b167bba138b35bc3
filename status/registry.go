package status

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metric names shared between packages
const (
	TicksTotal     = "loop.ticks"
	FramesTotal    = "render.frames"
	CellsDrawn     = "render.cells"
	IntentsQueued  = "input.queued"
	IntentsIgnored = "input.ignored"
	IntentsApplied = "game.steers"
	ApplesEaten    = "game.apples"
	SoundsPlayed   = "audio.played"
	PlayTimeMs     = "game.time_ms"

	AudioEnabled = "audio.enabled"

	TermBackend = "term.backend"
	TermColor   = "term.color"
)

// Registry groups metrics by value type
// Packages cache the pointers they write during setup; the loop updates atomics directly
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// Summary renders one "key=value" line per metric: ints, then bools, then strings, each group sorted by key
func (r *Registry) Summary() string {
	var b strings.Builder
	r.Ints.Range(func(k string, v *atomic.Int64) {
		fmt.Fprintf(&b, "%s=%d\n", k, v.Load())
	})
	r.Bools.Range(func(k string, v *atomic.Bool) {
		fmt.Fprintf(&b, "%s=%t\n", k, v.Load())
	})
	r.Strings.Range(func(k string, v *AtomicString) {
		fmt.Fprintf(&b, "%s=%s\n", k, v.Load())
	})
	return strings.TrimSuffix(b.String(), "\n")
}
