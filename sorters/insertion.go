package sorters

// Insertion implements insertion sort. Resumable sub-state is (outerIndex,
// insertingFlag, innerIndex): the inner shift loop can pause at any
// innerIndex and resume there on the next Step call. insertingFlag
// distinguishes "about to extract the next key" from "mid-shift with a
// held key".
type Insertion struct {
	data             []int32
	outerIndex       int
	insertingFlag    bool
	innerIndex       int
	key              int32
	totalComparisons uint64
	totalMoves       uint64
	complete         bool
	mem              *StandardMemoryTracker
}

func NewInsertion() *Insertion {
	return &Insertion{mem: NewStandardMemoryTracker()}
}

func (s *Insertion) Name() string { return "Insertion Sort" }

func (s *Insertion) Reset(data []int32) {
	s.data = append([]int32(nil), data...)
	s.outerIndex = 1
	s.insertingFlag = false
	s.innerIndex = 0
	s.key = 0
	s.totalComparisons = 0
	s.totalMoves = 0
	s.mem.Reset()
	s.mem.Alloc(len(s.data) * 4)
	s.complete = len(s.data) <= 1
}

func (s *Insertion) IsComplete() bool { return s.complete }
func (s *Insertion) Array() []int32   { return s.data }
func (s *Insertion) MemoryUsage() int { return s.mem.Current() }

func (s *Insertion) Step(budget int) StepResult {
	if s.complete {
		return StepResult{}
	}
	if budget < 0 {
		invariantViolation("negative budget")
	}

	n := len(s.data)
	used, moves := 0, 0

	for used < budget {
		if s.outerIndex >= n {
			s.complete = true
			break
		}

		if !s.insertingFlag {
			s.key = s.data[s.outerIndex]
			s.innerIndex = s.outerIndex - 1
			s.insertingFlag = true
			continue
		}

		if s.innerIndex < 0 {
			s.finishInsertion(&moves)
			continue
		}

		used++
		s.totalComparisons++
		if s.data[s.innerIndex] > s.key {
			s.data[s.innerIndex+1] = s.data[s.innerIndex]
			s.innerIndex--
			moves++
			s.totalMoves++
		} else {
			s.finishInsertion(&moves)
		}
	}

	if used > budget {
		invariantViolation("comparisons used exceeded budget")
	}
	if s.outerIndex >= n {
		s.complete = true
	}

	return StepResult{ComparisonsUsed: used, MovesMade: moves, Continued: !s.complete}
}

// finishInsertion drops the held key into the hole left by the shift loop
// and advances to the next outer index. Writing the key back into its own
// original slot (no shifts occurred) is not counted as a move.
func (s *Insertion) finishInsertion(moves *int) {
	hole := s.innerIndex + 1
	if hole != s.outerIndex {
		s.data[hole] = s.key
		*moves++
		s.totalMoves++
	}
	s.insertingFlag = false
	s.outerIndex++
}

func (s *Insertion) Telemetry() Telemetry {
	n := len(s.data)
	var progress float32
	if n > 0 {
		progress = float32(s.outerIndex) / float32(n)
	}
	if s.complete {
		progress = 1
	}

	var cursors []int
	status := "idle"
	if !s.complete && s.insertingFlag {
		if s.innerIndex >= 0 {
			cursors = []int{s.innerIndex, s.outerIndex}
		} else {
			cursors = []int{0, s.outerIndex}
		}
		status = "inserting"
	} else if s.complete {
		status = "complete"
	}

	return Telemetry{
		TotalComparisons: s.totalComparisons,
		TotalMoves:       s.totalMoves,
		MemoryCurrent:    s.mem.Current(),
		MemoryPeak:       s.mem.Peak(),
		Highlights:       cursors,
		Markers:          Markers{Cursors: cursors},
		StatusText:       status,
		ProgressHint:     clampProgress(progress),
	}
}
