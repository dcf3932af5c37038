// Package metrics defines the counters/histograms surface pytableaux's
// engine and service layers report through: a narrow interface plus a
// no-op default implementation, so callers can depend on Recorder without
// pulling in a concrete metrics backend.
package metrics

import "time"

// Recorder records engine and service observations. A nil Recorder is
// never passed around; callers use Noop() as the zero-cost default.
type Recorder interface {
	IncCounter(name string, labels map[string]string)
	ObserveDuration(name string, labels map[string]string, d time.Duration)
}

// Noop returns a Recorder that discards every observation.
func Noop() Recorder { return noopRecorder{} }

type noopRecorder struct{}

func (noopRecorder) IncCounter(string, map[string]string)                  {}
func (noopRecorder) ObserveDuration(string, map[string]string, time.Duration) {}
