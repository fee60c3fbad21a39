package sorters

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMerge_SortsCorrectly(t *testing.T) {
	s := NewMerge()
	original := []int32{5, 2, 8, 1, 9}
	s.Reset(original)

	runToCompletion(s, 3, 1000)

	require.True(t, s.IsComplete())
	require.True(t, isAscending(s.Array()))
	require.True(t, sameMultiset(original, s.Array()))
}

func TestMerge_ResumableUnderBudgetOne(t *testing.T) {
	s := NewMerge()
	s.Reset([]int32{5, 4, 3, 2, 1})

	for !s.IsComplete() {
		r := s.Step(1)
		require.LessOrEqual(t, r.ComparisonsUsed, 1)
	}
	require.True(t, isAscending(s.Array()))
}

// TestMerge_MemoryExceedsBaselineAfterFirstStep is scenario S7: merge sort
// allocates an auxiliary buffer lazily on the first real merge, so
// memory_current exceeds 5*sizeof(i32) immediately once work begins,
// unlike an in-place sorter.
func TestMerge_MemoryExceedsBaselineAfterFirstStep(t *testing.T) {
	s := NewMerge()
	s.Reset([]int32{5, 2, 8, 1, 9})
	s.Step(1)
	require.Greater(t, s.MemoryUsage(), 5*4)
}

// TestMerge_TailCopyRespectsBudget covers the tail copy that follows once
// one run of a merge is exhausted: on sorted input, every comparison favors
// the left run, so the right run is copied as a long tail without further
// comparisons. Under a budget of 1 every Step must still stay within the
// budget and the sort must still complete.
func TestMerge_TailCopyRespectsBudget(t *testing.T) {
	s := NewMerge()
	original := ascendingInt32(200)
	s.Reset(original)

	calls := 0
	for !s.IsComplete() && calls < 100000 {
		r := s.Step(1)
		require.LessOrEqual(t, r.ComparisonsUsed, 1)
		calls++
	}

	require.True(t, s.IsComplete())
	require.True(t, isAscending(s.Array()))
	require.True(t, sameMultiset(original, s.Array()))
}

func ascendingInt32(n int) []int32 {
	data := make([]int32, n)
	for i := range data {
		data[i] = int32(i + 1)
	}
	return data
}

func TestMerge_WidthDoublesEachSweep(t *testing.T) {
	s := NewMerge()
	s.Reset([]int32{5, 2, 8, 1, 9})
	require.Equal(t, 1, s.width)
	runToCompletion(s, 1000, 1)
	// n=5: width goes 1 -> 2 -> 4 -> 8 and the sort ends at the first
	// width >= n.
	require.Equal(t, 8, s.width)
}
