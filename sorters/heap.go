package sorters

type heapPhase int

const (
	heapPhaseBuild heapPhase = iota
	heapPhaseSortDown
	heapPhaseDone
)

// Heap implements heap sort in two phases: build (sift-down every
// non-leaf node from floor(n/2)-1 down to 0) and sort-down (repeatedly
// swap the root with the heap's tail, shrink the boundary, and sift-down
// the new root). A single sift-down is itself resumable: its internal
// state pauses between the left-child comparison, the right-child
// comparison, and the resulting swap decision.
type Heap struct {
	data       []int32
	phase      heapPhase
	boundary   int
	buildNext  int // next index to sift-down during the build phase
	buildDone  int
	buildTotal int

	siftActive  bool
	siftNode    int
	siftLargest int
	siftStage   int // 0: check left, 1: check right, 2: resolve

	totalComparisons uint64
	totalMoves       uint64
	complete         bool
	mem              *StandardMemoryTracker
}

func NewHeap() *Heap {
	return &Heap{mem: NewStandardMemoryTracker()}
}

func (s *Heap) Name() string { return "Heap Sort" }

func (s *Heap) Reset(data []int32) {
	s.data = append([]int32(nil), data...)
	n := len(s.data)

	s.boundary = n
	s.buildNext = n/2 - 1
	s.buildTotal = n / 2
	s.buildDone = 0
	s.phase = heapPhaseBuild
	s.siftActive = false
	s.siftNode = 0
	s.siftLargest = 0
	s.siftStage = 0
	s.totalComparisons = 0
	s.totalMoves = 0
	s.mem.Reset()
	s.mem.Alloc(n * 4)
	s.complete = n <= 1
	if s.complete {
		s.phase = heapPhaseDone
	}
}

func (s *Heap) IsComplete() bool { return s.complete }
func (s *Heap) Array() []int32   { return s.data }
func (s *Heap) MemoryUsage() int { return s.mem.Current() }

func (s *Heap) Step(budget int) StepResult {
	if s.complete {
		return StepResult{}
	}
	if budget < 0 {
		invariantViolation("negative budget")
	}

	used, moves := 0, 0

	for used < budget {
		if s.phase == heapPhaseDone {
			s.complete = true
			break
		}

		if !s.siftActive {
			if s.phase == heapPhaseBuild {
				if s.buildNext < 0 {
					s.phase = heapPhaseSortDown
					continue
				}
				s.beginSift(s.buildNext)
				continue
			}

			// heapPhaseSortDown
			if s.boundary <= 1 {
				s.phase = heapPhaseDone
				continue
			}
			s.boundary--
			s.data[0], s.data[s.boundary] = s.data[s.boundary], s.data[0]
			moves++
			s.totalMoves++
			s.beginSift(0)
			continue
		}

		switch s.siftStage {
		case 0:
			left := 2*s.siftNode + 1
			if left < s.boundary {
				used++
				s.totalComparisons++
				if s.data[left] > s.data[s.siftLargest] {
					s.siftLargest = left
				}
			}
			s.siftStage = 1

		case 1:
			right := 2*s.siftNode + 2
			if right < s.boundary {
				used++
				s.totalComparisons++
				if s.data[right] > s.data[s.siftLargest] {
					s.siftLargest = right
				}
			}
			s.siftStage = 2

		default: // case 2: resolve
			if s.siftLargest == s.siftNode {
				s.siftActive = false
				if s.phase == heapPhaseBuild {
					s.buildNext--
					s.buildDone++
				}
			} else {
				s.data[s.siftNode], s.data[s.siftLargest] = s.data[s.siftLargest], s.data[s.siftNode]
				moves++
				s.totalMoves++
				s.siftNode = s.siftLargest
				s.siftLargest = s.siftNode
				s.siftStage = 0
			}
		}
	}

	if used > budget {
		invariantViolation("comparisons used exceeded budget")
	}
	if s.phase == heapPhaseDone {
		s.complete = true
	}

	return StepResult{ComparisonsUsed: used, MovesMade: moves, Continued: !s.complete}
}

func (s *Heap) beginSift(node int) {
	s.siftActive = true
	s.siftNode = node
	s.siftLargest = node
	s.siftStage = 0
}

func (s *Heap) Telemetry() Telemetry {
	n := len(s.data)
	var progress float32
	switch {
	case s.complete:
		progress = 1
	case s.phase == heapPhaseBuild:
		if s.buildTotal > 0 {
			progress = 0.5 * float32(s.buildDone) / float32(s.buildTotal)
		}
	default: // sort-down
		if n > 0 {
			progress = 0.5 + 0.5*(1-float32(s.boundary)/float32(n))
		} else {
			progress = 1
		}
	}

	var cursors []int
	var boundaryPtr *int
	status := "building heap"
	if !s.complete {
		if s.siftActive {
			cursors = []int{s.siftNode, s.siftLargest}
		}
		b := s.boundary
		boundaryPtr = &b
		if s.phase == heapPhaseSortDown {
			status = "sorting down"
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
		Markers:          Markers{Cursors: cursors, HeapBoundary: boundaryPtr},
		StatusText:       status,
		ProgressHint:     clampProgress(progress),
	}
}
