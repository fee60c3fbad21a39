package ring

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRing_PushAndEvict(t *testing.T) {
	r := New[int](3)
	r.Push(1)
	r.Push(2)
	r.Push(3)
	require.Equal(t, 3, r.Len())
	require.Equal(t, []int{1, 2, 3}, r.Slice())

	r.Push(4)
	require.Equal(t, 3, r.Len())
	require.Equal(t, []int{2, 3, 4}, r.Slice())
}

func TestRing_GetOutOfRangePanics(t *testing.T) {
	r := New[int](2)
	r.Push(10)
	require.Panics(t, func() { r.Get(1) })
	require.Panics(t, func() { r.Get(-1) })
}

func TestRing_Clear(t *testing.T) {
	r := New[int](2)
	r.Push(1)
	r.Push(2)
	r.Clear()
	require.Equal(t, 0, r.Len())
	r.Push(3)
	require.Equal(t, []int{3}, r.Slice())
}

func TestRing_SetCapacityTrimsOldest(t *testing.T) {
	r := New[int](4)
	r.Push(1)
	r.Push(2)
	r.Push(3)
	r.SetCapacity(2)
	require.Equal(t, []int{2, 3}, r.Slice())
	require.Equal(t, 2, r.Cap())
}

func TestRing_NewPanicsOnInvalidCapacity(t *testing.T) {
	require.Panics(t, func() { New[int](0) })
}
