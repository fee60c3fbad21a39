package sortrace

import (
	"testing"

	"github.com/joeycumines/sorting-race/racelog"
	"github.com/joeycumines/sorting-race/sorters"
	"github.com/stretchr/testify/require"
)

func newTestController(t *testing.T, sorterSet []sorters.Sorter, opts ...RaceControllerOption) *RaceController {
	t.Helper()
	allOpts := append([]RaceControllerOption{WithLogger(racelog.NewNop())}, opts...)
	c, err := NewRaceController(sorterSet, allOpts...)
	require.NoError(t, err)
	return c
}

func TestWithLogger_NilIsIgnored(t *testing.T) {
	c, err := NewRaceController([]sorters.Sorter{sorters.NewBubble()}, WithLogger(nil))
	require.NoError(t, err)

	cfg := RunConfiguration{ArraySize: 5, Distribution: DistributionReversed, Seed: 1, Fairness: ComparisonBudgetMode(1), TargetFPS: 60}
	require.NotPanics(t, func() {
		require.NoError(t, c.StartRace(cfg, NewArrayGenerator(1).Generate(5, DistributionReversed)))
	})
}

func TestRaceController_RejectsEmptySorterSet(t *testing.T) {
	_, err := NewRaceController(nil, WithLogger(racelog.NewNop()))
	require.Error(t, err)
}

func TestRaceController_StartRaceRejectsInvalidConfig(t *testing.T) {
	c := newTestController(t, []sorters.Sorter{sorters.NewBubble()})
	cfg := RunConfiguration{ArraySize: 0, TargetFPS: 60, Fairness: ComparisonBudgetMode(1)}
	err := c.StartRace(cfg, []int32{1, 2, 3})
	require.Error(t, err)
	require.False(t, c.IsRunning())

	var configErr *ConfigError
	require.ErrorAs(t, err, &configErr)
	require.Equal(t, "array_size", configErr.Field)
}

// misbehavingSorter always reports more comparisons used than it was
// budgeted, to exercise RaceController.Step's invariant check.
type misbehavingSorter struct {
	data []int32
}

func (s *misbehavingSorter) Step(budget int) sorters.StepResult {
	return sorters.StepResult{ComparisonsUsed: budget + 1, MovesMade: 0, Continued: true}
}
func (s *misbehavingSorter) IsComplete() bool            { return false }
func (s *misbehavingSorter) Telemetry() sorters.Telemetry { return sorters.Telemetry{} }
func (s *misbehavingSorter) Reset(data []int32)          { s.data = data }
func (s *misbehavingSorter) Name() string                { return "Misbehaving Sort" }
func (s *misbehavingSorter) Array() []int32              { return s.data }
func (s *misbehavingSorter) MemoryUsage() int            { return 0 }

func TestRaceController_StepPanicsOnBudgetOverrun(t *testing.T) {
	c := newTestController(t, []sorters.Sorter{&misbehavingSorter{}})
	cfg := RunConfiguration{ArraySize: 5, Distribution: DistributionReversed, Seed: 1, Fairness: ComparisonBudgetMode(1), TargetFPS: 60}
	require.NoError(t, c.StartRace(cfg, NewArrayGenerator(1).Generate(5, DistributionReversed)))

	require.Panics(t, func() { c.Step() })
}

// TestRaceController_BubbleCompletesViaController is scenario S3: a single
// Bubble sorter driven through a controller reaches a sorted, complete
// state after enough ticks.
func TestRaceController_BubbleCompletesViaController(t *testing.T) {
	c := newTestController(t, []sorters.Sorter{sorters.NewBubble()})
	cfg := RunConfiguration{
		ArraySize:    8,
		Distribution: DistributionReversed,
		Seed:         1,
		Fairness:     ComparisonBudgetMode(1),
		TargetFPS:    60,
	}
	data := NewArrayGenerator(cfg.Seed).Generate(cfg.ArraySize, cfg.Distribution)
	require.NoError(t, c.StartRace(cfg, data))

	c.RunToCompletion(0)

	require.True(t, c.IsRaceComplete())
	snap, ok := c.LatestSnapshot()
	require.True(t, ok)
	require.True(t, snap.RaceComplete)
	require.True(t, isAscending32(snap.Sorters[0].Array))
}

// TestRaceController_DeterministicAcrossIndependentRuns is scenario S6: two
// independently constructed controllers with identical configuration run
// the same number of ticks and leave the first sorter with the same final
// array.
func TestRaceController_DeterministicAcrossIndependentRuns(t *testing.T) {
	cfg := RunConfiguration{
		ArraySize:    30,
		Distribution: DistributionShuffled,
		Seed:         99,
		Fairness:     ComparisonBudgetMode(2),
		TargetFPS:    60,
	}

	run := func() (int, []int32) {
		c := newTestController(t, sorters.Registry.BuildAll())
		data := NewArrayGenerator(cfg.Seed).Generate(cfg.ArraySize, cfg.Distribution)
		require.NoError(t, c.StartRace(cfg, data))
		steps := c.RunToCompletion(0)
		snap, ok := c.LatestSnapshot()
		require.True(t, ok)
		return steps, snap.Sorters[0].Array
	}

	steps1, array1 := run()
	steps2, array2 := run()

	require.Equal(t, steps1, steps2)
	require.Equal(t, array1, array2)
}

func TestRaceController_PauseResume(t *testing.T) {
	c := newTestController(t, []sorters.Sorter{sorters.NewBubble()})
	cfg := RunConfiguration{ArraySize: 5, Distribution: DistributionReversed, Seed: 1, Fairness: ComparisonBudgetMode(1), TargetFPS: 60}
	require.NoError(t, c.StartRace(cfg, NewArrayGenerator(1).Generate(5, DistributionReversed)))

	c.Pause()
	require.False(t, c.Step())
	require.Equal(t, 0, c.CurrentStep())

	c.Resume()
	require.True(t, c.Step())
	require.Equal(t, 1, c.CurrentStep())
}

func TestRaceController_Stop(t *testing.T) {
	c := newTestController(t, []sorters.Sorter{sorters.NewBubble()})
	cfg := RunConfiguration{ArraySize: 5, Distribution: DistributionReversed, Seed: 1, Fairness: ComparisonBudgetMode(1), TargetFPS: 60}
	require.NoError(t, c.StartRace(cfg, NewArrayGenerator(1).Generate(5, DistributionReversed)))

	c.Stop()
	require.False(t, c.IsRunning())
	require.False(t, c.Step())
}

func TestRaceController_ResetDoesNotReinitializeSorters(t *testing.T) {
	bubble := sorters.NewBubble()
	c := newTestController(t, []sorters.Sorter{bubble})
	cfg := RunConfiguration{ArraySize: 5, Distribution: DistributionReversed, Seed: 1, Fairness: ComparisonBudgetMode(1), TargetFPS: 60}
	require.NoError(t, c.StartRace(cfg, NewArrayGenerator(1).Generate(5, DistributionReversed)))
	c.Step()

	c.Reset()
	require.Equal(t, 0, c.CurrentStep())
	require.Empty(t, c.Snapshots())
	require.False(t, c.IsRunning())
	// the one comparison (and swap) of the first tick survives the Reset
	require.Equal(t, uint64(1), bubble.Telemetry().TotalComparisons)
	require.Equal(t, []int32{4, 5, 3, 2, 1}, bubble.Array())
}

func isAscending32(data []int32) bool {
	for i := 1; i < len(data); i++ {
		if data[i-1] > data[i] {
			return false
		}
	}
	return true
}
