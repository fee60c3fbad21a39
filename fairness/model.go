// Package fairness allocates each race tick's comparison budget across the
// active sorters. A Model is a pure function of the sorters' observable
// telemetry (and, for the wall-clock-aware variants, their own recent
// measurements) — never of elapsed wall time beyond what the implementation
// deliberately samples.
package fairness

import (
	"time"

	"github.com/joeycumines/sorting-race/sorters"
)

// Model allocates a per-sorter budget vector once per tick. A sorter
// reporting IsComplete() == true must receive 0; the sum of allocations
// must be positive while at least one sorter remains incomplete.
type Model interface {
	AllocateBudget(active []sorters.Sorter) []int
	Name() string
}

// PerformanceSample carries one sorter's measured cost for the tick just
// completed, keyed by its position in the controller's sorter vector.
// Models that care about measured wall time accept these through
// PerformanceUpdater; models that don't need not implement it.
type PerformanceSample struct {
	Index       int
	Comparisons int
	Elapsed     time.Duration
}

// PerformanceUpdater is implemented by models whose budget estimates are
// refined from measured per-tick performance (WallTime, Adaptive). The
// race controller calls UpdatePerformance after every tick when the
// configured model satisfies this interface.
type PerformanceUpdater interface {
	UpdatePerformance(samples []PerformanceSample)
}

// complexityWeight approximates each sorter's asymptotic class for the
// Weighted model: quadratic-worst-case sorters are weighted higher so they
// keep pace, visually, with the n-log-n sorters over the same tick budget.
func complexityWeight(name string) float64 {
	switch name {
	case "Bubble Sort", "Insertion Sort", "Selection Sort", "Shell Sort":
		return 2.0
	default: // Quick Sort, Merge Sort, Heap Sort
		return 1.0
	}
}

// allocate runs fn over active for every incomplete sorter, leaving
// complete sorters at 0 — the one rule every model shares. fn receives each
// sorter's index within active so callers needn't re-derive it.
func allocate(active []sorters.Sorter, fn func(i int, s sorters.Sorter) int) []int {
	out := make([]int, len(active))
	for i, s := range active {
		if s.IsComplete() {
			continue
		}
		v := fn(i, s)
		if v < 0 {
			v = 0
		}
		out[i] = v
	}
	return out
}
