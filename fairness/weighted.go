package fairness

import (
	"math"

	"github.com/joeycumines/sorting-race/sorters"
)

// Weighted grants each incomplete sorter ceil(Alpha*base + Beta*f(sorter))
// comparisons, where f is a per-sorter complexity weight (quadratic-class
// sorters outweigh n-log-n sorters so the race stays visually close). base
// is fixed at 1; Alpha and Beta scale the flat and weighted components
// respectively.
type Weighted struct {
	Alpha float64
	Beta  float64
}

func NewWeighted(alpha, beta float64) Weighted {
	return Weighted{Alpha: alpha, Beta: beta}
}

func (m Weighted) Name() string { return "Weighted" }

func (m Weighted) AllocateBudget(active []sorters.Sorter) []int {
	const base = 1.0
	return allocate(active, func(_ int, s sorters.Sorter) int {
		raw := m.Alpha*base + m.Beta*complexityWeight(s.Name())
		budget := int(math.Ceil(raw))
		if budget < 1 {
			budget = 1
		}
		return budget
	})
}
