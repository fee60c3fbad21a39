package sorters

// Merge implements iterative bottom-up merge sort. Sub-state is the
// current run width, the current left-run start, and — within a single
// merge — the (i, j, k) cursors over the left half, right half, and the
// auxiliary buffer. The auxiliary buffer is allocated once, lazily, on
// the first merge of a race and reused for every subsequent merge rather
// than per-merge, so its allocation is visible in the memory tracker from
// the first step that does real work onward.
type Merge struct {
	data  []int32
	aux   []int32
	width int
	start int

	merging      bool
	auxAllocated bool
	i, j, k      int
	mergeMid     int
	mergeRight   int

	totalComparisons uint64
	totalMoves       uint64
	complete         bool
	mem              *StandardMemoryTracker
}

func NewMerge() *Merge {
	return &Merge{mem: NewStandardMemoryTracker()}
}

func (s *Merge) Name() string { return "Merge Sort" }

func (s *Merge) Reset(data []int32) {
	s.data = append([]int32(nil), data...)
	n := len(s.data)
	s.aux = nil
	s.width = 1
	s.start = 0
	s.merging = false
	s.auxAllocated = false
	s.totalComparisons = 0
	s.totalMoves = 0
	s.mem.Reset()
	s.mem.Alloc(n * 4)
	s.complete = n <= 1
}

func (s *Merge) IsComplete() bool { return s.complete }
func (s *Merge) Array() []int32   { return s.data }
func (s *Merge) MemoryUsage() int { return s.mem.Current() }

func (s *Merge) Step(budget int) StepResult {
	if s.complete {
		return StepResult{}
	}
	if budget < 0 {
		invariantViolation("negative budget")
	}

	n := len(s.data)
	used, moves := 0, 0

	for used < budget {
		if s.width >= n {
			s.complete = true
			break
		}

		if !s.merging {
			if s.start >= n {
				s.width *= 2
				s.start = 0
				continue
			}

			mid := min(s.start+s.width, n)
			right := min(s.start+2*s.width, n)
			if mid >= right {
				s.start += 2 * s.width
				continue
			}

			if !s.auxAllocated {
				s.aux = make([]int32, n)
				s.mem.Alloc(n * 4)
				s.auxAllocated = true
			}

			s.i, s.j, s.k = s.start, mid, s.start
			s.mergeMid, s.mergeRight = mid, right
			s.merging = true
			continue
		}

		switch {
		case s.i < s.mergeMid && s.j < s.mergeRight:
			used++
			s.totalComparisons++
			if s.data[s.i] <= s.data[s.j] {
				s.aux[s.k] = s.data[s.i]
				s.i++
			} else {
				s.aux[s.k] = s.data[s.j]
				s.j++
			}
			s.k++
			moves++
			s.totalMoves++

		case s.i < s.mergeMid:
			s.aux[s.k] = s.data[s.i]
			s.i++
			s.k++
			moves++
			s.totalMoves++

		case s.j < s.mergeRight:
			s.aux[s.k] = s.data[s.j]
			s.j++
			s.k++
			moves++
			s.totalMoves++

		default:
			copy(s.data[s.start:s.mergeRight], s.aux[s.start:s.mergeRight])
			s.merging = false
			s.start += 2 * s.width
		}
	}

	if used > budget {
		invariantViolation("comparisons used exceeded budget")
	}
	if s.width >= n {
		s.complete = true
	}

	return StepResult{ComparisonsUsed: used, MovesMade: moves, Continued: !s.complete}
}

func (s *Merge) Telemetry() Telemetry {
	n := len(s.data)
	var progress float32
	if s.complete {
		progress = 1
	} else if n > 0 {
		progress = float32(s.width) / float32(n)
	}

	var cursors []int
	var runs []Interval
	status := "merging"
	if !s.complete {
		if s.merging {
			cursors = []int{s.i, s.j}
			runs = []Interval{{Start: s.start, End: s.mergeRight}}
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
		Markers:          Markers{Cursors: cursors, MergeRuns: runs},
		StatusText:       status,
		ProgressHint:     clampProgress(progress),
	}
}
