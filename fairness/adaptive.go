package fairness

import "github.com/joeycumines/sorting-race/sorters"

// adaptiveBaselineBudget is the nominal per-sorter comparison budget before
// inverse-efficiency normalization is applied.
const adaptiveBaselineBudget = 10.0

// Adaptive maintains a per-sorter efficiency estimate (operations per
// second) updated by an EWMA with rate LearningRate, then allocates budgets
// normalized inversely to efficiency: slower sorters receive more
// comparisons per tick, so the race converges on a shared finish line
// rather than visually stalling the slowest algorithm.
type Adaptive struct {
	LearningRate float64

	efficiency map[int]float64 // ops/sec estimate, by sorter index
}

func NewAdaptive(learningRate float64) *Adaptive {
	return &Adaptive{LearningRate: learningRate, efficiency: make(map[int]float64)}
}

func (m *Adaptive) Name() string { return "Adaptive" }

func (m *Adaptive) AllocateBudget(active []sorters.Sorter) []int {
	incomplete := make([]int, 0, len(active))
	sumInv := 0.0
	for i, s := range active {
		if s.IsComplete() {
			continue
		}
		incomplete = append(incomplete, i)
		sumInv += 1 / m.efficiencyFor(i)
	}
	if len(incomplete) == 0 || sumInv == 0 {
		return make([]int, len(active))
	}

	out := make([]int, len(active))
	share := adaptiveBaselineBudget * float64(len(incomplete))
	for _, i := range incomplete {
		budget := int(share * (1 / m.efficiencyFor(i)) / sumInv)
		if budget < 1 {
			budget = 1
		}
		out[i] = budget
	}
	return out
}

func (m *Adaptive) efficiencyFor(index int) float64 {
	if m.efficiency == nil {
		m.efficiency = make(map[int]float64)
	}
	if v, ok := m.efficiency[index]; ok {
		return v
	}
	return 1 / defaultSecondsPerComparison
}

func (m *Adaptive) UpdatePerformance(samples []PerformanceSample) {
	if m.efficiency == nil {
		m.efficiency = make(map[int]float64)
	}
	eta := m.LearningRate
	for _, sample := range samples {
		if sample.Comparisons <= 0 || sample.Elapsed <= 0 {
			continue
		}
		recentOpsPerSec := float64(sample.Comparisons) / sample.Elapsed.Seconds()
		prior := m.efficiencyFor(sample.Index)
		m.efficiency[sample.Index] = (1-eta)*prior + eta*recentOpsPerSec
	}
}
