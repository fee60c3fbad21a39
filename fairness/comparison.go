package fairness

import "github.com/joeycumines/sorting-race/sorters"

// ComparisonBudget grants every incomplete sorter exactly K comparisons per
// tick, regardless of algorithm. This is the simplest model and also backs
// the reserved "EqualSteps" mode as ComparisonBudget{K: 1}.
type ComparisonBudget struct {
	K int
}

// NewComparisonBudget clamps k to >= 1, matching the construction-time
// clamp required by the allocation contract.
func NewComparisonBudget(k int) ComparisonBudget {
	if k < 1 {
		k = 1
	}
	return ComparisonBudget{K: k}
}

func (m ComparisonBudget) Name() string { return "ComparisonBudget" }

func (m ComparisonBudget) AllocateBudget(active []sorters.Sorter) []int {
	k := m.K
	if k < 1 {
		k = 1
	}
	return allocate(active, func(int, sorters.Sorter) int { return k })
}
