package parway

import (
	"runtime"

	"go.uber.org/zap"
)

// Options carries execution configuration. The zero value selects the
// ambient defaults: worker count from runtime.GOMAXPROCS and a no-op
// logger. Defaults make sequential and parallel builds produce identical
// output values.
type Options struct {
	// Workers is the worker-count hint for parallel builds. 0 selects the
	// ambient parallelism. Sequential builds ignore the hint.
	Workers int

	logger       *zap.Logger
	latencyStats bool

	invalid string
}

type Option func(*Options)

// WithWorkers overrides the worker count. n must be positive; anything
// else is a configuration error reported before dispatch.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			if o.invalid == "" {
				o.invalid = "workers must be positive"
			}
			return
		}
		o.Workers = n
	}
}

// WithLogger attaches a logger for scheduling events in parallel builds.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithLatencyStats enables per-unit latency recording. It takes effect on
// pool construction.
func WithLatencyStats() Option {
	return func(o *Options) {
		o.latencyStats = true
	}
}

func buildOptions(opts []Option) (Options, error) {
	var o Options
	for _, apply := range opts {
		apply(&o)
	}
	if o.invalid != "" {
		return Options{}, &ConfigError{Reason: o.invalid}
	}
	return o, nil
}

func (o Options) workerCount() int {
	if o.Workers > 0 {
		return o.Workers
	}
	return runtime.GOMAXPROCS(0)
}

func (o Options) log() *zap.Logger {
	if o.logger != nil {
		return o.logger
	}
	return zap.NewNop()
}

// Snapshot is the serializable view of Options.
type Snapshot struct {
	Workers      int  `json:"workers"`
	LatencyStats bool `json:"latency_stats,omitempty"`
}

func (o Options) Snapshot() Snapshot {
	return Snapshot{Workers: o.Workers, LatencyStats: o.latencyStats}
}

// FromSnapshot rebuilds Options from a decoded snapshot.
func FromSnapshot(s Snapshot) (Options, error) {
	if s.Workers < 0 {
		return Options{}, &ConfigError{Reason: "workers must not be negative"}
	}
	return Options{Workers: s.Workers, latencyStats: s.LatencyStats}, nil
}
