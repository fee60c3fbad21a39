package sorters

// registryEntry pairs a canonical display name with its constructor, in the
// fixed order new sorter vectors are built.
type registryEntry struct {
	name        string
	constructor func() Sorter
}

var registryEntries = []registryEntry{
	{"Bubble Sort", func() Sorter { return NewBubble() }},
	{"Insertion Sort", func() Sorter { return NewInsertion() }},
	{"Selection Sort", func() Sorter { return NewSelection() }},
	{"Quick Sort", func() Sorter { return NewQuick() }},
	{"Heap Sort", func() Sorter { return NewHeap() }},
	{"Merge Sort", func() Sorter { return NewMerge() }},
	{"Shell Sort", func() Sorter { return NewShell() }},
}

// sorterRegistry exposes the seven canonical sorter implementations by
// their display names, in the fixed order a race vector is built.
type sorterRegistry struct{}

// Registry is the package-wide sorter registry.
var Registry sorterRegistry

// Names returns the seven canonical sorter names, in registry order.
func (sorterRegistry) Names() []string {
	names := make([]string, len(registryEntries))
	for i, e := range registryEntries {
		names[i] = e.name
	}
	return names
}

// Build constructs a single fresh Sorter by its canonical name. It returns
// nil if name does not match any registered sorter.
func (sorterRegistry) Build(name string) Sorter {
	for _, e := range registryEntries {
		if e.name == name {
			return e.constructor()
		}
	}
	return nil
}

// BuildAll constructs one fresh instance of every registered sorter, in
// registry order — the default full roster for a race.
func (sorterRegistry) BuildAll() []Sorter {
	out := make([]Sorter, len(registryEntries))
	for i, e := range registryEntries {
		out[i] = e.constructor()
	}
	return out
}
