package fairness

import (
	"github.com/joeycumines/sorting-race/sorters"
)

// defaultSecondsPerComparison seeds the WallTime and Adaptive estimators
// before any real measurement exists — roughly 10M comparisons/sec, a
// conservative guess that gets corrected within a few ticks.
const defaultSecondsPerComparison = 1e-7

// WallTime scales each sorter's budget so its expected step cost fits
// within SliceMillis / n_active. Per-sorter cost is estimated from the
// previous step's measured wall time per comparison via an EWMA with a
// fixed smoothing factor of 0.5, updated through UpdatePerformance.
type WallTime struct {
	SliceMillis float64

	estimate map[int]float64 // seconds per comparison, by sorter index
}

func NewWallTime(sliceMillis float64) *WallTime {
	return &WallTime{SliceMillis: sliceMillis, estimate: make(map[int]float64)}
}

func (m *WallTime) Name() string { return "WallTime" }

func (m *WallTime) AllocateBudget(active []sorters.Sorter) []int {
	activeCount := 0
	for _, s := range active {
		if !s.IsComplete() {
			activeCount++
		}
	}
	if activeCount == 0 {
		return make([]int, len(active))
	}

	sliceSeconds := m.SliceMillis / 1000
	perSorterSeconds := sliceSeconds / float64(activeCount)

	return allocate(active, func(i int, _ sorters.Sorter) int {
		secPerCmp := m.estimateFor(i)
		budget := int(perSorterSeconds / secPerCmp)
		if budget < 1 {
			budget = 1
		}
		return budget
	})
}

func (m *WallTime) estimateFor(index int) float64 {
	if m.estimate == nil {
		m.estimate = make(map[int]float64)
	}
	if v, ok := m.estimate[index]; ok {
		return v
	}
	return defaultSecondsPerComparison
}

func (m *WallTime) UpdatePerformance(samples []PerformanceSample) {
	if m.estimate == nil {
		m.estimate = make(map[int]float64)
	}
	for _, sample := range samples {
		if sample.Comparisons <= 0 || sample.Elapsed <= 0 {
			continue
		}
		measured := sample.Elapsed.Seconds() / float64(sample.Comparisons)
		prior, ok := m.estimate[sample.Index]
		if !ok {
			prior = defaultSecondsPerComparison
		}
		m.estimate[sample.Index] = 0.5*prior + 0.5*measured
	}
}
