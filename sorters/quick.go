package sorters

// quickPartitionPhase enumerates the resumable sub-steps of a single
// Lomuto-style partition, including the up-to-three comparisons needed to
// select a median-of-three pivot before the scan begins.
type quickPartitionPhase int

const (
	quickPhaseMedian0 quickPartitionPhase = iota
	quickPhaseMedian1
	quickPhaseMedian2
	quickPhaseScan
)

// Quick implements quick sort over an explicit work stack of pending
// [lo, hi) ranges, so that a single partition can suspend and resume
// across arbitrarily many Step calls under a comparison budget — the
// classical recursive partition is not resumable under a budget. Pivot
// selection is median-of-three when the range holds at least 3 elements,
// otherwise the last element; ranges of length <= 1 are popped without
// performing any work.
type Quick struct {
	data  []int32
	stack []Interval

	active     bool
	lo, hi     int
	mid        int
	pivotValue int32
	i, j       int
	phase      quickPartitionPhase

	totalComparisons uint64
	totalMoves       uint64
	complete         bool
	mem              *StandardMemoryTracker
}

func NewQuick() *Quick {
	return &Quick{mem: NewStandardMemoryTracker()}
}

func (s *Quick) Name() string { return "Quick Sort" }

func (s *Quick) Reset(data []int32) {
	s.data = append([]int32(nil), data...)
	n := len(s.data)
	s.stack = s.stack[:0]
	if n > 1 {
		s.stack = append(s.stack, Interval{Start: 0, End: n})
	}
	s.active = false
	s.totalComparisons = 0
	s.totalMoves = 0
	s.mem.Reset()
	s.mem.Alloc(n * 4)
	s.complete = n <= 1
}

func (s *Quick) IsComplete() bool { return s.complete }
func (s *Quick) Array() []int32   { return s.data }
func (s *Quick) MemoryUsage() int { return s.mem.Current() }

func (s *Quick) Step(budget int) StepResult {
	if s.complete {
		return StepResult{}
	}
	if budget < 0 {
		invariantViolation("negative budget")
	}

	used, moves := 0, 0

	for used < budget {
		if !s.active {
			if len(s.stack) == 0 {
				s.complete = true
				break
			}
			top := s.stack[len(s.stack)-1]
			s.stack = s.stack[:len(s.stack)-1]
			if top.End-top.Start <= 1 {
				continue // popped without work
			}
			s.beginPartition(top.Start, top.End)
			continue
		}

		switch s.phase {
		case quickPhaseMedian0:
			used++
			s.totalComparisons++
			if s.data[s.lo] > s.data[s.mid] {
				s.data[s.lo], s.data[s.mid] = s.data[s.mid], s.data[s.lo]
				moves++
				s.totalMoves++
			}
			s.phase = quickPhaseMedian1

		case quickPhaseMedian1:
			used++
			s.totalComparisons++
			if s.data[s.mid] > s.data[s.hi-1] {
				s.data[s.mid], s.data[s.hi-1] = s.data[s.hi-1], s.data[s.mid]
				moves++
				s.totalMoves++
			}
			s.phase = quickPhaseMedian2

		case quickPhaseMedian2:
			used++
			s.totalComparisons++
			if s.data[s.lo] > s.data[s.mid] {
				s.data[s.lo], s.data[s.mid] = s.data[s.mid], s.data[s.lo]
				moves++
				s.totalMoves++
			}
			s.data[s.mid], s.data[s.hi-1] = s.data[s.hi-1], s.data[s.mid]
			moves++
			s.totalMoves++
			s.pivotValue = s.data[s.hi-1]
			s.i, s.j = s.lo, s.lo
			s.phase = quickPhaseScan

		default: // quickPhaseScan
			if s.j < s.hi-1 {
				used++
				s.totalComparisons++
				if s.data[s.j] < s.pivotValue {
					if s.i != s.j {
						s.data[s.i], s.data[s.j] = s.data[s.j], s.data[s.i]
						moves++
						s.totalMoves++
					}
					s.i++
				}
				s.j++
				continue
			}

			if s.i != s.hi-1 {
				s.data[s.i], s.data[s.hi-1] = s.data[s.hi-1], s.data[s.i]
				moves++
				s.totalMoves++
			}

			left := Interval{Start: s.lo, End: s.i}
			right := Interval{Start: s.i + 1, End: s.hi}
			s.active = false
			if right.End-right.Start > 0 {
				s.stack = append(s.stack, right)
			}
			if left.End-left.Start > 0 {
				s.stack = append(s.stack, left)
			}
		}
	}

	if used > budget {
		invariantViolation("comparisons used exceeded budget")
	}
	if !s.active && len(s.stack) == 0 {
		s.complete = true
	}

	return StepResult{ComparisonsUsed: used, MovesMade: moves, Continued: !s.complete}
}

func (s *Quick) beginPartition(lo, hi int) {
	s.lo, s.hi = lo, hi
	s.active = true
	if hi-lo >= 3 {
		s.mid = lo + (hi-lo)/2
		s.phase = quickPhaseMedian0
	} else {
		s.pivotValue = s.data[hi-1]
		s.i, s.j = lo, lo
		s.phase = quickPhaseScan
	}
}

func (s *Quick) pendingLength() int {
	total := 0
	for _, frame := range s.stack {
		total += frame.End - frame.Start
	}
	if s.active {
		total += s.hi - s.lo
	}
	return total
}

func (s *Quick) Telemetry() Telemetry {
	n := len(s.data)
	var progress float32
	if s.complete {
		progress = 1
	} else if n > 0 {
		progress = 1 - float32(s.pendingLength())/float32(n)
	}

	var cursors []int
	var pivot *int
	status := "partitioning"
	if !s.complete {
		if s.active {
			cursors = []int{s.i, s.j}
			hi1 := s.hi - 1
			pivot = &hi1
		}
	} else {
		status = "complete"
	}

	return Telemetry{
		TotalComparisons: s.totalComparisons,
		TotalMoves:       s.totalMoves,
		MemoryCurrent:    s.mem.Current(),
		MemoryPeak:       s.mem.Peak(),
		Highlights:       cursors,
		Markers:          Markers{Cursors: cursors, Pivot: pivot},
		StatusText:       status,
		ProgressHint:     clampProgress(progress),
	}
}
