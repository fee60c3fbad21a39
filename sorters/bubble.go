package sorters

// Bubble implements bubble sort. Resumable sub-state is (passIndex,
// positionInPass): a step may suspend mid-pass and resume at the same
// position on the next call. The sort is complete once passIndex reaches
// len(data)-1.
type Bubble struct {
	data             []int32
	passIndex        int
	positionInPass   int
	totalComparisons uint64
	totalMoves       uint64
	complete         bool
	mem              *StandardMemoryTracker
}

// NewBubble returns a Bubble sorter with no working array; call Reset
// before stepping.
func NewBubble() *Bubble {
	return &Bubble{mem: NewStandardMemoryTracker()}
}

func (s *Bubble) Name() string { return "Bubble Sort" }

func (s *Bubble) Reset(data []int32) {
	s.data = append([]int32(nil), data...)
	s.passIndex = 0
	s.positionInPass = 0
	s.totalComparisons = 0
	s.totalMoves = 0
	s.mem.Reset()
	s.mem.Alloc(len(s.data) * 4)
	s.complete = len(s.data) <= 1
}

func (s *Bubble) IsComplete() bool { return s.complete }
func (s *Bubble) Array() []int32   { return s.data }
func (s *Bubble) MemoryUsage() int { return s.mem.Current() }

func (s *Bubble) Step(budget int) StepResult {
	if s.complete {
		return StepResult{}
	}
	if budget < 0 {
		invariantViolation("negative budget")
	}

	n := len(s.data)
	used, moves := 0, 0

	for used < budget {
		if s.passIndex >= n-1 {
			s.complete = true
			break
		}
		if s.positionInPass >= n-1-s.passIndex {
			s.passIndex++
			s.positionInPass = 0
			continue
		}

		i := s.positionInPass
		used++
		s.totalComparisons++
		if s.data[i] > s.data[i+1] {
			s.data[i], s.data[i+1] = s.data[i+1], s.data[i]
			moves++
			s.totalMoves++
		}
		s.positionInPass++
	}

	if used > budget {
		invariantViolation("comparisons used exceeded budget")
	}
	if s.passIndex >= n-1 {
		s.complete = true
	}

	return StepResult{ComparisonsUsed: used, MovesMade: moves, Continued: !s.complete}
}

func (s *Bubble) Telemetry() Telemetry {
	n := len(s.data)
	var progress float32
	if n > 1 {
		progress = float32(s.passIndex) / float32(n-1)
	}
	if s.complete {
		progress = 1
	}

	var cursors []int
	status := "idle"
	if !s.complete && n > 1 {
		cursors = []int{s.positionInPass, s.positionInPass + 1}
		status = "comparing"
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
