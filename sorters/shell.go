package sorters

// Shell implements shell sort using Knuth's gap sequence (h = 3h+1,
// starting from the largest h < n/3, decremented by h = (h-1)/3).
// Resumable sub-state is (gap, outerCursor, innerCursor): the gapped
// insertion loop for the current gap can suspend at any innerCursor and
// resume there.
type Shell struct {
	data             []int32
	gap              int
	gapInitial       int
	outerCursor      int
	innerCursor      int
	insertingFlag    bool
	key              int32
	totalComparisons uint64
	totalMoves       uint64
	complete         bool
	mem              *StandardMemoryTracker
}

func NewShell() *Shell {
	return &Shell{mem: NewStandardMemoryTracker()}
}

func (s *Shell) Name() string { return "Shell Sort" }

func (s *Shell) Reset(data []int32) {
	s.data = append([]int32(nil), data...)
	n := len(s.data)

	h := 1
	for 3*h+1 < n/3 {
		h = 3*h + 1
	}
	s.gap = h
	s.gapInitial = h
	s.outerCursor = h
	s.innerCursor = 0
	s.insertingFlag = false
	s.key = 0
	s.totalComparisons = 0
	s.totalMoves = 0
	s.mem.Reset()
	s.mem.Alloc(len(s.data) * 4)
	s.complete = n <= 1
}

func (s *Shell) IsComplete() bool { return s.complete }
func (s *Shell) Array() []int32   { return s.data }
func (s *Shell) MemoryUsage() int { return s.mem.Current() }

func (s *Shell) Step(budget int) StepResult {
	if s.complete {
		return StepResult{}
	}
	if budget < 0 {
		invariantViolation("negative budget")
	}

	n := len(s.data)
	used, moves := 0, 0

	for used < budget {
		if s.gap <= 0 {
			s.complete = true
			break
		}
		if s.outerCursor >= n {
			s.gap = (s.gap - 1) / 3
			s.outerCursor = s.gap
			s.innerCursor = 0
			s.insertingFlag = false
			continue
		}

		if !s.insertingFlag {
			s.key = s.data[s.outerCursor]
			s.innerCursor = s.outerCursor
			s.insertingFlag = true
			continue
		}

		if s.innerCursor < s.gap {
			s.finishGappedInsertion(&moves)
			continue
		}

		used++
		s.totalComparisons++
		if s.data[s.innerCursor-s.gap] > s.key {
			s.data[s.innerCursor] = s.data[s.innerCursor-s.gap]
			s.innerCursor -= s.gap
			moves++
			s.totalMoves++
		} else {
			s.finishGappedInsertion(&moves)
		}
	}

	if used > budget {
		invariantViolation("comparisons used exceeded budget")
	}
	if s.gap <= 0 {
		s.complete = true
	}

	return StepResult{ComparisonsUsed: used, MovesMade: moves, Continued: !s.complete}
}

func (s *Shell) finishGappedInsertion(moves *int) {
	if s.innerCursor != s.outerCursor {
		s.data[s.innerCursor] = s.key
		*moves++
		s.totalMoves++
	}
	s.insertingFlag = false
	s.outerCursor++
}

func (s *Shell) Telemetry() Telemetry {
	var progress float32
	if s.gapInitial > 0 {
		progress = 1 - float32(s.gap)/float32(s.gapInitial)
	}
	if s.complete {
		progress = 1
	}

	var cursors []int
	var gapPtr *int
	status := "idle"
	if !s.complete {
		gap := s.gap
		gapPtr = &gap
		if s.insertingFlag {
			cursors = []int{s.innerCursor, s.outerCursor}
		}
		status = "gapped insertion"
	} else {
		status = "complete"
	}

	return Telemetry{
		TotalComparisons: s.totalComparisons,
		TotalMoves:       s.totalMoves,
		MemoryCurrent:    s.mem.Current(),
		MemoryPeak:       s.mem.Peak(),
		Highlights:       cursors,
		Markers:          Markers{Cursors: cursors, Gap: gapPtr},
		StatusText:       status,
		ProgressHint:     clampProgress(progress),
	}
}
