package sorters

// MemoryTracker accounts for a sorter's memory usage (its working array
// plus any auxiliary buffer). alloc uses
// saturating addition; free uses saturating subtraction (never
// underflows). Peak is always >= current.
type MemoryTracker interface {
	Alloc(bytes int)
	Free(bytes int)
	Current() int
	Peak() int
	Reset()
}

// StandardMemoryTracker is the plain MemoryTracker implementation used by
// every sorter by default.
type StandardMemoryTracker struct {
	current int
	peak    int
}

// NewStandardMemoryTracker returns a zeroed StandardMemoryTracker.
func NewStandardMemoryTracker() *StandardMemoryTracker {
	return &StandardMemoryTracker{}
}

func (t *StandardMemoryTracker) Alloc(bytes int) {
	t.current = saturatingAdd(t.current, bytes)
	if t.current > t.peak {
		t.peak = t.current
	}
}

func (t *StandardMemoryTracker) Free(bytes int) {
	t.current = saturatingSub(t.current, bytes)
}

func (t *StandardMemoryTracker) Current() int { return t.current }
func (t *StandardMemoryTracker) Peak() int    { return t.peak }

func (t *StandardMemoryTracker) Reset() {
	t.current = 0
	t.peak = 0
}

// MemoryOpType identifies the kind of operation recorded in a
// VerboseMemoryTracker's log.
type MemoryOpType int

const (
	MemoryOpAlloc MemoryOpType = iota
	MemoryOpFree
	MemoryOpReset
)

// MemoryOperation is one entry of a VerboseMemoryTracker's append-only log.
type MemoryOperation struct {
	Op           MemoryOpType
	Bytes        int
	CurrentAfter int
	PeakAfter    int
}

// VerboseMemoryTracker behaves like StandardMemoryTracker but additionally
// records every operation, for debugging.
type VerboseMemoryTracker struct {
	current int
	peak    int
	log     []MemoryOperation
}

// NewVerboseMemoryTracker returns a zeroed VerboseMemoryTracker.
func NewVerboseMemoryTracker() *VerboseMemoryTracker {
	return &VerboseMemoryTracker{}
}

func (t *VerboseMemoryTracker) Alloc(bytes int) {
	t.current = saturatingAdd(t.current, bytes)
	if t.current > t.peak {
		t.peak = t.current
	}
	t.record(MemoryOpAlloc, bytes)
}

func (t *VerboseMemoryTracker) Free(bytes int) {
	t.current = saturatingSub(t.current, bytes)
	t.record(MemoryOpFree, bytes)
}

func (t *VerboseMemoryTracker) Current() int { return t.current }
func (t *VerboseMemoryTracker) Peak() int    { return t.peak }

func (t *VerboseMemoryTracker) Reset() {
	t.current = 0
	t.peak = 0
	t.record(MemoryOpReset, 0)
}

// Log returns the append-only operation log recorded so far.
func (t *VerboseMemoryTracker) Log() []MemoryOperation {
	return t.log
}

// ClearLog discards the recorded operation log without touching current
// or peak usage.
func (t *VerboseMemoryTracker) ClearLog() {
	t.log = nil
}

func (t *VerboseMemoryTracker) record(op MemoryOpType, bytes int) {
	t.log = append(t.log, MemoryOperation{
		Op:           op,
		Bytes:        bytes,
		CurrentAfter: t.current,
		PeakAfter:    t.peak,
	})
}

func saturatingAdd(a, b int) int {
	sum := a + b
	if sum < a { // overflow
		return int(^uint(0) >> 1)
	}
	return sum
}

func saturatingSub(a, b int) int {
	if b > a {
		return 0
	}
	return a - b
}
