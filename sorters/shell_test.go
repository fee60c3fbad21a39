package sorters

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestShell_SortsCorrectly(t *testing.T) {
	s := NewShell()
	original := []int32{9, 8, 3, 7, 5, 6, 4, 1}
	s.Reset(original)

	runToCompletion(s, 3, 1000)

	require.True(t, s.IsComplete())
	require.True(t, isAscending(s.Array()))
	require.True(t, sameMultiset(original, s.Array()))
}

func TestShell_ResumableUnderBudgetOne(t *testing.T) {
	s := NewShell()
	s.Reset([]int32{5, 4, 3, 2, 1})

	for !s.IsComplete() {
		r := s.Step(1)
		require.LessOrEqual(t, r.ComparisonsUsed, 1)
	}
	require.True(t, isAscending(s.Array()))
}

func TestShell_GapSequenceKnuth(t *testing.T) {
	s := NewShell()
	s.Reset(make([]int32, 20))
	// n=20: 20/3=6; the Knuth sequence runs 1, 4, 13, and the largest term
	// below 6 is 4. So gap=4.
	require.Equal(t, 4, s.gap)
}

func TestShell_ProgressReachesOne(t *testing.T) {
	s := NewShell()
	s.Reset([]int32{3, 1, 2})
	runToCompletion(s, 1, 1000)
	require.Equal(t, float32(1.0), s.Telemetry().ProgressHint)
}
