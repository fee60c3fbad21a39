package sortrace

import (
	"fmt"
	"time"

	"github.com/joeycumines/sorting-race/fairness"
	"github.com/joeycumines/sorting-race/racelog"
	"github.com/joeycumines/sorting-race/racemetrics"
	"github.com/joeycumines/sorting-race/sorters"
)

// RaceController drives the tick loop: each Step asks the fairness model
// for a budget vector, steps every incomplete sorter by its share, and
// records a snapshot of the resulting ensemble state. It exclusively owns
// its sorters, fairness model, and snapshot ring; nothing outside the
// controller may mutate a sorter directly.
type RaceController struct {
	sorters  []sorters.Sorter
	fairness fairness.Model

	snapshots   *SnapshotRing
	currentStep int
	startTime   time.Time
	running     bool
	paused      bool

	logger  *racelog.Logger
	metrics *racemetrics.TickMetrics
}

// NewRaceController constructs a controller over a fixed sorter vector. The
// sorter order is stable for the controller's lifetime; StartRace resets
// each sorter in place rather than replacing the vector.
func NewRaceController(sorterSet []sorters.Sorter, opts ...RaceControllerOption) (*RaceController, error) {
	if len(sorterSet) == 0 {
		return nil, configError("sorters", "at least one sorter is required")
	}
	cfg := resolveRaceControllerOptions(opts)

	c := &RaceController{
		sorters:   sorterSet,
		snapshots: NewSnapshotRing(cfg.maxSnapshots),
		logger:    cfg.logger,
	}
	if cfg.metricsEnabled {
		c.metrics = racemetrics.New()
	}
	return c, nil
}

// StartRace validates config, resets every sorter with a fresh clone of
// data, clears snapshots, captures the step-0 snapshot, and begins
// running. The race state is not mutated if validation fails.
func (c *RaceController) StartRace(config RunConfiguration, data []int32) error {
	if err := config.Validate(); err != nil {
		return WrapError("starting race", err)
	}

	c.fairness = config.Fairness.build()
	for _, s := range c.sorters {
		// Each Sorter.Reset clones data itself before mutating it in place,
		// so passing the slice directly here is safe and avoids a redundant
		// copy per sorter.
		s.Reset(data)
	}
	c.snapshots.Clear()
	c.currentStep = 0
	c.startTime = time.Now()
	c.running = true
	c.paused = false

	c.snapshots.TakeSnapshot(c.sorters, c.currentStep, c.startTime)
	c.logger.RaceStarted(c.fairness.Name(), config.ArraySize, config.Seed)

	return nil
}

// Step advances the race by one tick. It is a no-op returning false if the
// race is not running or is paused, or if every sorter is already
// complete (in which case running is also cleared). Otherwise it requests
// a budget vector, steps every sorter that received budget > 0, advances
// the step counter, and appends a snapshot. Returns true iff work
// happened.
func (c *RaceController) Step() bool {
	if !c.running || c.paused {
		return false
	}
	if c.allComplete() {
		c.running = false
		return false
	}

	tickStart := time.Now()
	budgets := c.fairness.AllocateBudget(c.sorters)

	var samples []PerformanceUpdateSample
	for i, s := range c.sorters {
		budget := budgets[i]
		if budget <= 0 || s.IsComplete() {
			continue
		}
		stepStart := time.Now()
		result := s.Step(budget)
		elapsed := time.Since(stepStart)

		if result.ComparisonsUsed > budget {
			msg := fmt.Sprintf("%s: comparisons_used %d exceeds budget %d", s.Name(), result.ComparisonsUsed, budget)
			c.logger.InvariantViolation(msg)
			invariantViolation(msg)
		}

		samples = append(samples, PerformanceUpdateSample{index: i, comparisons: result.ComparisonsUsed, elapsed: elapsed})
		if c.metrics != nil {
			c.metrics.RecordThroughput(i, result.ComparisonsUsed, elapsed)
		}
	}
	c.updatePerformance(samples)

	c.currentStep++
	now := time.Now()
	snap := c.snapshots.TakeSnapshot(c.sorters, c.currentStep, now)
	c.logger.Tick(c.currentStep, budgets)

	if c.metrics != nil {
		c.metrics.RecordTick(time.Since(tickStart))
	}

	if snap.RaceComplete {
		c.running = false
		c.logger.RaceComplete(c.currentStep)
	}

	return true
}

// PerformanceUpdateSample is a sorter's measured cost for one tick, fed to
// fairness models implementing fairness.PerformanceUpdater.
type PerformanceUpdateSample struct {
	index       int
	comparisons int
	elapsed     time.Duration
}

func (c *RaceController) updatePerformance(samples []PerformanceUpdateSample) {
	updater, ok := c.fairness.(fairness.PerformanceUpdater)
	if !ok || len(samples) == 0 {
		return
	}
	converted := make([]fairness.PerformanceSample, len(samples))
	for i, s := range samples {
		converted[i] = fairness.PerformanceSample{Index: s.index, Comparisons: s.comparisons, Elapsed: s.elapsed}
	}
	updater.UpdatePerformance(converted)
}

// RunToCompletion loops Step until the race ends or maxSteps ticks have
// executed (maxSteps <= 0 means unbounded). Returns the number of ticks
// actually executed.
func (c *RaceController) RunToCompletion(maxSteps int) int {
	executed := 0
	for {
		if maxSteps > 0 && executed >= maxSteps {
			break
		}
		if !c.Step() {
			break
		}
		executed++
	}
	return executed
}

// Pause suspends the race; subsequent Step calls no-op until Resume.
func (c *RaceController) Pause() { c.paused = true }

// Resume clears a prior Pause.
func (c *RaceController) Resume() { c.paused = false }

// Stop ends the race immediately; in-flight sorter state is preserved but
// no further ticks occur until the next StartRace.
func (c *RaceController) Stop() {
	c.running = false
	c.paused = false
}

// Reset clears snapshots and zeroes the step counter, but does not
// re-initialize sorters — a subsequent StartRace does that.
func (c *RaceController) Reset() {
	c.snapshots.Clear()
	c.currentStep = 0
	c.running = false
	c.paused = false
}

func (c *RaceController) allComplete() bool {
	for _, s := range c.sorters {
		if !s.IsComplete() {
			return false
		}
	}
	return true
}

// CurrentStep returns the number of ticks executed since the last StartRace/Reset.
func (c *RaceController) CurrentStep() int { return c.currentStep }

// IsRunning reports whether a race is in progress: started, and not yet
// stopped, reset, or complete. A paused race still reports true, though
// Step no-ops until Resume.
func (c *RaceController) IsRunning() bool { return c.running }

// IsPaused reports whether the race is currently paused.
func (c *RaceController) IsPaused() bool { return c.paused }

// IsRaceComplete reports whether every sorter has finished.
func (c *RaceController) IsRaceComplete() bool { return c.allComplete() }

// LatestSnapshot returns the most recently captured snapshot, if any.
func (c *RaceController) LatestSnapshot() (RaceSnapshot, bool) { return c.snapshots.Latest() }

// Snapshots returns a copy of every retained snapshot, oldest first.
func (c *RaceController) Snapshots() []RaceSnapshot { return c.snapshots.Slice() }

// SetMaxSnapshots resizes the retained snapshot history.
func (c *RaceController) SetMaxSnapshots(n int) { c.snapshots.SetMaxSnapshots(n) }

// Metrics returns a snapshot of collected tick metrics, or the zero value
// if metrics were not enabled via WithMetrics.
func (c *RaceController) Metrics() racemetrics.Snapshot {
	if c.metrics == nil {
		return racemetrics.Snapshot{}
	}
	return c.metrics.Snapshot()
}
