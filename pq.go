package bestfirst

import "container/heap"

// StateValue is a frontier entry: a state and its accumulated cost.
type StateValue[S, V any] struct {
	State S
	Value V
}

// ExpansionQueue is the frontier. Next returns the entry with the least
// cost; the order among equal costs is unspecified.
type ExpansionQueue[S, V any] interface {
	Reset()
	Empty() bool
	Len() int
	Enqueue(state S, total V)
	// Next removes and returns the least-cost entry. Calling it on an empty
	// queue is a programming error and panics with ErrEmptyQueue.
	Next() StateValue[S, V]
}

// stateValueHeap adapts a slice of entries to container/heap.
type stateValueHeap[S, V any] struct {
	items   []StateValue[S, V]
	compare func(a, b V) int
}

func (h *stateValueHeap[S, V]) Len() int { return len(h.items) }
func (h *stateValueHeap[S, V]) Less(i, j int) bool {
	return h.compare(h.items[i].Value, h.items[j].Value) < 0
}
func (h *stateValueHeap[S, V]) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }

func (h *stateValueHeap[S, V]) Push(x any) {
	h.items = append(h.items, x.(StateValue[S, V]))
}

func (h *stateValueHeap[S, V]) Pop() any {
	old := h.items
	n := len(old)
	item := old[n-1]
	var zero StateValue[S, V]
	old[n-1] = zero
	h.items = old[:n-1]
	return item
}

// MinHeapQueue is a binary min-heap frontier keyed by cost.
type MinHeapQueue[S, V any] struct {
	heap     stateValueHeap[S, V]
	reserved int
}

// NewMinHeapQueue creates a queue ordered by compare, pre-allocating room
// for reserved entries.
func NewMinHeapQueue[S, V any](compare func(a, b V) int, reserved int) *MinHeapQueue[S, V] {
	if reserved < 0 {
		reserved = 0
	}
	return &MinHeapQueue[S, V]{
		heap: stateValueHeap[S, V]{
			items:   make([]StateValue[S, V], 0, reserved),
			compare: compare,
		},
		reserved: reserved,
	}
}

// Reset drops every entry by replacing the backing storage.
func (q *MinHeapQueue[S, V]) Reset() {
	q.heap.items = make([]StateValue[S, V], 0, q.reserved)
}

func (q *MinHeapQueue[S, V]) Empty() bool { return len(q.heap.items) == 0 }

func (q *MinHeapQueue[S, V]) Len() int { return len(q.heap.items) }

func (q *MinHeapQueue[S, V]) Enqueue(state S, total V) {
	heap.Push(&q.heap, StateValue[S, V]{State: state, Value: total})
}

func (q *MinHeapQueue[S, V]) Next() StateValue[S, V] {
	if q.Empty() {
		panic(ErrEmptyQueue)
	}
	return heap.Pop(&q.heap).(StateValue[S, V])
}
