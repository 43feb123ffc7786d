package route

import "container/heap"

// openItem is a frontier entry: a state, its f-score and its heap index.
type openItem struct {
	state State
	f     int64
	index int
}

// openHeap is a min-heap of *openItem ordered by f, then row, then column,
// then heading. The secondary keys make the pop order deterministic.
type openHeap []*openItem

// Len returns the number of items in the heap.
func (h openHeap) Len() int { return len(h) }

// Less orders by f-score with a row-major, heading-last tie-break.
func (h openHeap) Less(i, j int) bool {
	a, b := h[i], h[j]
	if a.f != b.f {
		return a.f < b.f
	}
	if a.state.Point != b.state.Point {
		return a.state.Point.Less(b.state.Point)
	}
	return a.state.Heading < b.state.Heading
}

// Swap swaps two elements and keeps their indices current.
func (h openHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

// Push adds a new element x onto the heap.
func (h *openHeap) Push(x interface{}) {
	item := x.(*openItem)
	item.index = len(*h)
	*h = append(*h, item)
}

// Pop removes and returns the last element.
func (h *openHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil // avoid memory leak
	item.index = -1
	*h = old[:n-1]

	return item
}

// openSet is the frontier: a heap plus an index so that a state is present
// at most once.
type openSet struct {
	heap  openHeap
	items map[State]*openItem
}

func newOpenSet() *openSet {
	s := &openSet{items: make(map[State]*openItem)}
	heap.Init(&s.heap)
	return s
}

// Len returns the number of states on the frontier.
func (s *openSet) Len() int { return s.heap.Len() }

// upsert inserts st with priority f, or re-positions it if already present.
func (s *openSet) upsert(st State, f int64) {
	if it, ok := s.items[st]; ok {
		it.f = f
		heap.Fix(&s.heap, it.index)
		return
	}
	it := &openItem{state: st, f: f}
	heap.Push(&s.heap, it)
	s.items[st] = it
}

// pop removes and returns the state with minimum priority.
func (s *openSet) pop() State {
	it := heap.Pop(&s.heap).(*openItem)
	delete(s.items, it.state)
	return it.state
}
