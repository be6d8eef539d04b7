package dadd

import "runtime"

// engineConfig collects the construction-time settings of an Engine.
type engineConfig struct {
	workers int
	timing  bool
}

// Option configures an Engine at construction.
type Option func(*engineConfig)

func defaultEngineConfig() engineConfig {
	return engineConfig{
		workers: runtime.GOMAXPROCS(0),
		timing:  false,
	}
}

// WithWorkers sets the worker count used by ModeParallel. Values <= 0 keep
// the default of GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(cfg *engineConfig) {
		if n > 0 {
			cfg.workers = n
		}
	}
}

// WithTiming enables per-stage timing, including a clock read around every
// pair sum. Timing is off by default.
func WithTiming(enabled bool) Option {
	return func(cfg *engineConfig) {
		cfg.timing = enabled
	}
}

func applyOptions(opts ...Option) engineConfig {
	cfg := defaultEngineConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
