package sorters

import "sort"

func isAscending(data []int32) bool {
	for i := 1; i < len(data); i++ {
		if data[i-1] > data[i] {
			return false
		}
	}
	return true
}

func sameMultiset(a, b []int32) bool {
	if len(a) != len(b) {
		return false
	}
	ac := append([]int32(nil), a...)
	bc := append([]int32(nil), b...)
	sort.Slice(ac, func(i, j int) bool { return ac[i] < ac[j] })
	sort.Slice(bc, func(i, j int) bool { return bc[i] < bc[j] })
	for i := range ac {
		if ac[i] != bc[i] {
			return false
		}
	}
	return true
}

// runToCompletion steps s with the given per-call budget until it reports
// complete, returning the total number of Step calls made. It stops after
// limit calls if completion never occurs; callers assert completion
// themselves.
func runToCompletion(s Sorter, budget int, limit int) int {
	calls := 0
	for !s.IsComplete() && calls < limit {
		s.Step(budget)
		calls++
	}
	return calls
}
