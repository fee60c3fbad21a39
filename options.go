package sortrace

import (
	"github.com/joeycumines/sorting-race/racelog"
)

// raceControllerOptions holds configuration resolved from RaceControllerOption values.
type raceControllerOptions struct {
	maxSnapshots   int
	logger         *racelog.Logger
	metricsEnabled bool
}

// RaceControllerOption configures a RaceController at construction.
type RaceControllerOption interface {
	applyRaceController(*raceControllerOptions)
}

type raceControllerOptionFunc func(*raceControllerOptions)

func (f raceControllerOptionFunc) applyRaceController(opts *raceControllerOptions) { f(opts) }

// WithMaxSnapshots sets the snapshot ring's bound. Default is 120 (roughly
// four seconds of history at 30 ticks/sec).
func WithMaxSnapshots(n int) RaceControllerOption {
	return raceControllerOptionFunc(func(opts *raceControllerOptions) {
		opts.maxSnapshots = n
	})
}

// WithLogger attaches a *racelog.Logger. Default is racelog.Default(). A
// nil logger is ignored, so the default (or a prior WithLogger) stands.
func WithLogger(logger *racelog.Logger) RaceControllerOption {
	return raceControllerOptionFunc(func(opts *raceControllerOptions) {
		if logger == nil {
			return
		}
		opts.logger = logger
	})
}

// WithMetrics enables per-tick latency and per-sorter throughput tracking,
// retrievable via RaceController.Metrics().
func WithMetrics(enabled bool) RaceControllerOption {
	return raceControllerOptionFunc(func(opts *raceControllerOptions) {
		opts.metricsEnabled = enabled
	})
}

func resolveRaceControllerOptions(opts []RaceControllerOption) *raceControllerOptions {
	cfg := &raceControllerOptions{
		maxSnapshots: 120,
		logger:       racelog.Default(),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt.applyRaceController(cfg)
	}
	return cfg
}
