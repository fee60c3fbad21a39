package sorters

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSelection_SortsCorrectly(t *testing.T) {
	s := NewSelection()
	original := []int32{64, 25, 12, 22, 11}
	s.Reset(original)

	runToCompletion(s, 3, 1000)

	require.True(t, s.IsComplete())
	require.True(t, isAscending(s.Array()))
	require.True(t, sameMultiset(original, s.Array()))
}

func TestSelection_DeferredSwapAcrossSteps(t *testing.T) {
	s := NewSelection()
	s.Reset([]int32{3, 1, 2})

	// scanIndex starts at 1; two comparisons complete the scan for
	// outerPosition 0, but the swap itself is deferred to the step after.
	s.Step(1)
	require.Equal(t, []int32{3, 1, 2}, s.Array())
	s.Step(1)
	// scan complete; swap happens on this or a subsequent free transition
	for i := 0; i < 3 && s.Array()[0] != 1; i++ {
		s.Step(1)
	}
	require.Equal(t, int32(1), s.Array()[0])
}

func TestSelection_AlreadySortedNoMoves(t *testing.T) {
	s := NewSelection()
	s.Reset([]int32{1, 2, 3, 4})
	runToCompletion(s, 1000, 1000)
	require.Equal(t, uint64(0), s.Telemetry().TotalMoves)
}

func TestSelection_ZeroBudgetNoOp(t *testing.T) {
	s := NewSelection()
	s.Reset([]int32{3, 1, 2})
	r := s.Step(0)
	require.Equal(t, StepResult{ComparisonsUsed: 0, MovesMade: 0, Continued: true}, r)
}
