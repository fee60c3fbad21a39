package sortrace

import "github.com/joeycumines/sorting-race/fairness"

// Distribution selects the shape of array an ArrayGenerator produces.
type Distribution int

const (
	DistributionShuffled Distribution = iota
	DistributionNearlySorted
	DistributionReversed
	DistributionFewUnique
	DistributionSorted
	DistributionWithDuplicates
)

// String returns a human-readable distribution name, used in test failure
// messages.
func (d Distribution) String() string {
	switch d {
	case DistributionShuffled:
		return "Shuffled"
	case DistributionNearlySorted:
		return "NearlySorted"
	case DistributionReversed:
		return "Reversed"
	case DistributionFewUnique:
		return "FewUnique"
	case DistributionSorted:
		return "Sorted"
	case DistributionWithDuplicates:
		return "WithDuplicates"
	default:
		return "Unknown"
	}
}

type fairnessKind int

const (
	fairnessKindComparisonBudget fairnessKind = iota
	fairnessKindWeighted
	fairnessKindWallTime
	fairnessKindAdaptive
)

// FairnessMode is a tagged variant selecting and parameterizing one of the
// four fairness.Model implementations. Construct one with
// ComparisonBudgetMode, WeightedMode, WallTimeMode, or AdaptiveMode.
type FairnessMode struct {
	kind         fairnessKind
	k            int
	alpha, beta  float64
	sliceMillis  float64
	learningRate float64
}

// ComparisonBudgetMode grants every incomplete sorter k comparisons/tick.
func ComparisonBudgetMode(k int) FairnessMode {
	return FairnessMode{kind: fairnessKindComparisonBudget, k: k}
}

// EqualStepsMode is the reserved "every sorter advances one comparison per
// tick" mode, equivalent to ComparisonBudgetMode(1).
func EqualStepsMode() FairnessMode {
	return ComparisonBudgetMode(1)
}

// WeightedMode grants budgets proportional to a per-sorter complexity
// weight, scaled by alpha (flat component) and beta (weighted component).
func WeightedMode(alpha, beta float64) FairnessMode {
	return FairnessMode{kind: fairnessKindWeighted, alpha: alpha, beta: beta}
}

// WallTimeMode scales budgets so each sorter's expected step cost fits
// within sliceMillis / n_active, estimated from measured wall time.
func WallTimeMode(sliceMillis float64) FairnessMode {
	return FairnessMode{kind: fairnessKindWallTime, sliceMillis: sliceMillis}
}

// AdaptiveMode grants budgets inversely proportional to a per-sorter
// efficiency estimate, updated via an EWMA with the given learning rate.
func AdaptiveMode(learningRate float64) FairnessMode {
	return FairnessMode{kind: fairnessKindAdaptive, learningRate: learningRate}
}

func (m FairnessMode) validate() error {
	switch m.kind {
	case fairnessKindComparisonBudget:
		if m.k <= 0 {
			return configError("fairness_mode", "Comparison budget must be greater than 0")
		}
	case fairnessKindWallTime:
		if m.sliceMillis <= 0 {
			return configError("fairness_mode", "Wall time limit must be greater than 0")
		}
	case fairnessKindWeighted:
		if m.alpha < 0 || m.beta < 0 {
			return configError("fairness_mode", "Weights must be non-negative")
		}
	case fairnessKindAdaptive:
		if m.learningRate < 0 || m.learningRate > 1 {
			return configError("fairness_mode", "Learning rate must be between 0.0 and 1.0")
		}
	}
	return nil
}

func (m FairnessMode) build() fairness.Model {
	switch m.kind {
	case fairnessKindWeighted:
		return fairness.NewWeighted(m.alpha, m.beta)
	case fairnessKindWallTime:
		return fairness.NewWallTime(m.sliceMillis)
	case fairnessKindAdaptive:
		return fairness.NewAdaptive(m.learningRate)
	default: // fairnessKindComparisonBudget
		return fairness.NewComparisonBudget(m.k)
	}
}

// RunConfiguration is the immutable record describing one race.
type RunConfiguration struct {
	ArraySize    int
	Distribution Distribution
	Seed         uint64
	Fairness     FairnessMode
	TargetFPS    int
}

// Validate checks the configuration against the textual error contract
// StartRace relies on. It returns nil iff the configuration is usable.
func (c RunConfiguration) Validate() error {
	if c.ArraySize <= 0 {
		return configError("array_size", "Array size must be greater than 0")
	}
	if c.TargetFPS <= 0 {
		return configError("target_fps", "Target FPS must be greater than 0")
	}
	return c.Fairness.validate()
}
