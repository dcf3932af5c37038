package engine

import "time"

// Options configures Build: max steps, timeout, rank/group optimization
// toggles, model building, and automatic trunk construction.
type Options struct {
	MaxSteps       int
	Timeout        time.Duration
	IsRankOptim    bool
	IsGroupOptim   bool
	BuildModels    bool
	AutoBuildTrunk bool
}

// DefaultOptions returns the engine's default policy: optimizations on,
// trunk auto-built, a generous but finite step/time budget.
func DefaultOptions() Options {
	return Options{
		MaxSteps:       10_000,
		Timeout:        30 * time.Second,
		IsRankOptim:    true,
		IsGroupOptim:   true,
		BuildModels:    true,
		AutoBuildTrunk: true,
	}
}
