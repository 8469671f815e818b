package bestfirst

import (
	"fmt"

	"github.com/pdrpinto/bestfirst/internal"
)

// ExpansionTable is the visited set plus the parent and cost bookkeeping used
// to rebuild paths.
//
// Records are write-once: Expand on a state that is already present does
// nothing and reports false. Parent and TotalValue are only defined for
// expanded states; implementations panic with ErrNotExpanded otherwise.
type ExpansionTable[S, V any] interface {
	Reset()
	Expand(parent, child S, total V) bool
	IsExpanded(query S) bool
	Parent(query S) S
	TotalValue(query S) V
	Len() int
}

type tableEntry[S, V any] struct {
	child  S
	parent S
	total  V
}

// HashTable is the map-backed ExpansionTable keyed by state id.
type HashTable[S State[S, K], K comparable, V any] struct {
	entries map[K]tableEntry[S, V]
}

func NewHashTable[S State[S, K], K comparable, V any]() *HashTable[S, K, V] {
	return &HashTable[S, K, V]{entries: make(map[K]tableEntry[S, V])}
}

func (t *HashTable[S, K, V]) Reset() {
	clear(t.entries)
}

// Expand records child's parent and accumulated cost unless child is
// already known. A known id that belongs to a state not equal to child is a
// broken id contract and panics with ErrIDCollision.
func (t *HashTable[S, K, V]) Expand(parent, child S, total V) bool {
	id := child.ID()
	if e, ok := t.entries[id]; ok {
		if !e.child.Equal(child) {
			panic(fmt.Errorf("%w: id %v", ErrIDCollision, id))
		}
		return false
	}
	t.entries[id] = tableEntry[S, V]{child: child, parent: parent, total: total}
	return true
}

func (t *HashTable[S, K, V]) IsExpanded(query S) bool {
	_, ok := t.entries[query.ID()]
	return ok
}

func (t *HashTable[S, K, V]) Parent(query S) S {
	return t.lookup(query).parent
}

func (t *HashTable[S, K, V]) TotalValue(query S) V {
	return t.lookup(query).total
}

func (t *HashTable[S, K, V]) Len() int { return len(t.entries) }

func (t *HashTable[S, K, V]) lookup(query S) tableEntry[S, V] {
	e, ok := t.entries[query.ID()]
	if !ok {
		panic(fmt.Errorf("%w: id %v", ErrNotExpanded, query.ID()))
	}
	return e
}

// TryTotalValue returns the accumulated cost of query, or the algebra's
// Invalid value when query was never expanded.
func TryTotalValue[S, V any](table ExpansionTable[S, V], algebra Algebra[V], query S) V {
	if !table.IsExpanded(query) {
		return algebra.Invalid()
	}
	return table.TotalValue(query)
}

// ReversePath follows parent links from terminal back to the start state it
// was reached from, returning terminal first and the start last. Start
// states are the ones recorded as their own parent.
//
// terminal must be expanded. A parent chain that does not reach a start
// state within table.Len() steps panics.
func ReversePath[S Equaler[S], V any](table ExpansionTable[S, V], terminal S) []S {
	path := []S{terminal}
	current := terminal
	for steps := 0; ; steps++ {
		parent := table.Parent(current)
		if parent.Equal(current) {
			return path
		}
		if steps >= table.Len() {
			panic(fmt.Errorf("bestfirst: parent chain from %v does not reach a start state", terminal))
		}
		path = append(path, parent)
		current = parent
	}
}

// Path is ReversePath in start-to-terminal order.
func Path[S Equaler[S], V any](table ExpansionTable[S, V], terminal S) []S {
	return internal.Reverse(ReversePath(table, terminal))
}
