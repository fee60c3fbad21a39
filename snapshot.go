package sortrace

import (
	"time"

	"github.com/joeycumines/sorting-race/internal/ring"
	"github.com/joeycumines/sorting-race/sorters"
)

// SorterSnapshot is one sorter's immutable, deep-copied observable state at
// the moment a RaceSnapshot was taken.
type SorterSnapshot struct {
	Name       string
	Array      []int32
	Telemetry  sorters.Telemetry
	IsComplete bool
}

// RaceSnapshot is an immutable record of the entire race's observable state
// at one tick. Mutating the sorters after capture never alters a
// previously recorded snapshot.
type RaceSnapshot struct {
	Timestamp    time.Time
	Step         int
	Sorters      []SorterSnapshot
	RaceComplete bool
}

// SnapshotRing is a bounded FIFO of RaceSnapshot, evicting the oldest entry
// on overflow.
type SnapshotRing struct {
	buf *ring.Ring[RaceSnapshot]
}

// NewSnapshotRing constructs a ring with the given capacity (>= 1).
func NewSnapshotRing(maxSnapshots int) *SnapshotRing {
	if maxSnapshots < 1 {
		maxSnapshots = 1
	}
	return &SnapshotRing{buf: ring.New[RaceSnapshot](maxSnapshots)}
}

// TakeSnapshot synthesizes a RaceSnapshot from the current sorter set,
// pushes it into the ring (evicting the oldest entry if full), and returns
// it.
func (r *SnapshotRing) TakeSnapshot(active []sorters.Sorter, step int, now time.Time) RaceSnapshot {
	snap := RaceSnapshot{
		Timestamp:    now,
		Step:         step,
		Sorters:      make([]SorterSnapshot, len(active)),
		RaceComplete: true,
	}
	for i, s := range active {
		complete := s.IsComplete()
		if !complete {
			snap.RaceComplete = false
		}
		snap.Sorters[i] = SorterSnapshot{
			Name:       s.Name(),
			Array:      append([]int32(nil), s.Array()...),
			Telemetry:  cloneTelemetry(s.Telemetry()),
			IsComplete: complete,
		}
	}
	r.buf.Push(snap)
	return snap
}

// SetMaxSnapshots resizes the ring, trimming the oldest entries eagerly if
// it shrinks below the current entry count.
func (r *SnapshotRing) SetMaxSnapshots(n int) {
	if n < 1 {
		n = 1
	}
	r.buf.SetCapacity(n)
}

// Len returns the number of snapshots currently retained.
func (r *SnapshotRing) Len() int { return r.buf.Len() }

// Slice returns a copy of every retained snapshot, oldest first.
func (r *SnapshotRing) Slice() []RaceSnapshot { return r.buf.Slice() }

// Latest returns the most recently captured snapshot, if any.
func (r *SnapshotRing) Latest() (RaceSnapshot, bool) {
	if r.buf.Len() == 0 {
		return RaceSnapshot{}, false
	}
	return r.buf.Get(r.buf.Len() - 1), true
}

// Clear empties the ring without altering its capacity.
func (r *SnapshotRing) Clear() { r.buf.Clear() }

func cloneTelemetry(t sorters.Telemetry) sorters.Telemetry {
	t.Highlights = append([]int(nil), t.Highlights...)
	t.Markers = cloneMarkers(t.Markers)
	return t
}

func cloneMarkers(m sorters.Markers) sorters.Markers {
	if m.Pivot != nil {
		v := *m.Pivot
		m.Pivot = &v
	}
	if m.HeapBoundary != nil {
		v := *m.HeapBoundary
		m.HeapBoundary = &v
	}
	if m.Gap != nil {
		v := *m.Gap
		m.Gap = &v
	}
	m.MergeRuns = append([]sorters.Interval(nil), m.MergeRuns...)
	m.Cursors = append([]int(nil), m.Cursors...)
	return m
}
