package racemetrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTickMetrics_RecordTickTracksMinMaxMean(t *testing.T) {
	m := New()
	m.RecordTick(10 * time.Millisecond)
	m.RecordTick(30 * time.Millisecond)
	m.RecordTick(20 * time.Millisecond)

	snap := m.Snapshot()
	require.Equal(t, int64(3), snap.Ticks)
	require.Equal(t, 20*time.Millisecond, snap.LastTick)
	require.Equal(t, 10*time.Millisecond, snap.MinTick)
	require.Equal(t, 30*time.Millisecond, snap.MaxTick)
	require.Equal(t, 20*time.Millisecond, snap.MeanTick)
}

func TestTickMetrics_RecordThroughputSkipsZeroComparisons(t *testing.T) {
	m := New()
	m.RecordThroughput(0, 0, 5*time.Millisecond)

	snap := m.Snapshot()
	_, ok := snap.Throughput[0]
	require.False(t, ok, "a zero-comparison tick must not seed or drag down the EMA")
}

func TestTickMetrics_RecordThroughputSkipsZeroElapsed(t *testing.T) {
	m := New()
	m.RecordThroughput(0, 10, 0)

	snap := m.Snapshot()
	_, ok := snap.Throughput[0]
	require.False(t, ok)
}

func TestTickMetrics_RecordThroughputSeedsThenSmooths(t *testing.T) {
	m := New()
	m.RecordThroughput(2, 100, time.Second)
	first := m.Snapshot().Throughput[2]
	require.InDelta(t, 100, first, 0.001)

	m.RecordThroughput(2, 200, time.Second)
	second := m.Snapshot().Throughput[2]
	require.InDelta(t, 0.9*100+0.1*200, second, 0.001)
}

func TestTickMetrics_ThroughputIsPerSorterIndex(t *testing.T) {
	m := New()
	m.RecordThroughput(0, 50, time.Second)
	m.RecordThroughput(1, 75, time.Second)

	snap := m.Snapshot()
	require.InDelta(t, 50, snap.Throughput[0], 0.001)
	require.InDelta(t, 75, snap.Throughput[1], 0.001)
}

func TestTickMetrics_SnapshotIsIndependentCopy(t *testing.T) {
	m := New()
	m.RecordThroughput(0, 50, time.Second)

	snap := m.Snapshot()
	snap.Throughput[0] = 999

	fresh := m.Snapshot()
	require.InDelta(t, 50, fresh.Throughput[0], 0.001)
}
