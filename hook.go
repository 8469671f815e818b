package bestfirst

import (
	"context"
	"fmt"
	"io"
	"log/slog"
)

// HookFlags select which table events reach the observer. Resets are
// always reported.
type HookFlags uint32

const (
	OnExpansion HookFlags = 1 << (iota + 1)
	OnParentLookup

	DefaultHookFlags = OnExpansion | OnParentLookup
)

// TableObserver receives the events of a HookedTable.
type TableObserver[S, V any] interface {
	TableReset()
	// Expanded is called after a new record; count is the number of
	// expansions since the last reset, this one included.
	Expanded(count int, parent, child S, total V)
	ParentLookup(parent, child S)
}

// HookedTable decorates an ExpansionTable, reporting resets, new expansions
// and parent lookups to an observer. Table semantics are unchanged.
type HookedTable[S, V any] struct {
	inner    ExpansionTable[S, V]
	observer TableObserver[S, V]
	flags    HookFlags
	count    int
}

func NewHookedTable[S, V any](inner ExpansionTable[S, V], observer TableObserver[S, V], flags HookFlags) *HookedTable[S, V] {
	return &HookedTable[S, V]{inner: inner, observer: observer, flags: flags}
}

func (t *HookedTable[S, V]) Reset() {
	t.count = 0
	t.observer.TableReset()
	t.inner.Reset()
}

func (t *HookedTable[S, V]) Expand(parent, child S, total V) bool {
	if !t.inner.Expand(parent, child, total) {
		return false
	}
	t.count++
	if t.flags&OnExpansion != 0 {
		t.observer.Expanded(t.count, parent, child, total)
	}
	return true
}

func (t *HookedTable[S, V]) IsExpanded(query S) bool { return t.inner.IsExpanded(query) }

func (t *HookedTable[S, V]) Parent(query S) S {
	parent := t.inner.Parent(query)
	if t.flags&OnParentLookup != 0 {
		t.observer.ParentLookup(parent, query)
	}
	return parent
}

func (t *HookedTable[S, V]) TotalValue(query S) V { return t.inner.TotalValue(query) }

func (t *HookedTable[S, V]) Len() int { return t.inner.Len() }

// Count returns the number of expansions since the last reset.
func (t *HookedTable[S, V]) Count() int { return t.count }

// WriterObserver writes one human-readable line per event. Write errors are
// ignored.
type WriterObserver[S, V any] struct {
	W io.Writer
}

func (o WriterObserver[S, V]) TableReset() {
	fmt.Fprintln(o.W, "table reset")
}

func (o WriterObserver[S, V]) Expanded(count int, parent, child S, total V) {
	fmt.Fprintf(o.W, "expand : (count = %d) %v --> %v, value : %v\n", count, parent, child, total)
}

func (o WriterObserver[S, V]) ParentLookup(parent, child S) {
	fmt.Fprintf(o.W, "get_parent: %v --> %v\n", parent, child)
}

// SlogObserver emits table events as debug records.
type SlogObserver[S, V any] struct {
	Logger *slog.Logger
}

func (o SlogObserver[S, V]) TableReset() {
	o.Logger.Debug("table reset")
}

func (o SlogObserver[S, V]) Expanded(count int, parent, child S, total V) {
	if !o.Logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	o.Logger.Debug("expand",
		slog.Int("count", count),
		slog.Any("parent", parent),
		slog.Any("child", child),
		slog.Any("value", total),
	)
}

func (o SlogObserver[S, V]) ParentLookup(parent, child S) {
	o.Logger.Debug("get_parent", slog.Any("parent", parent), slog.Any("child", child))
}

// MultiObserver forwards every event to each observer in order.
type MultiObserver[S, V any] []TableObserver[S, V]

func (m MultiObserver[S, V]) TableReset() {
	for _, o := range m {
		o.TableReset()
	}
}

func (m MultiObserver[S, V]) Expanded(count int, parent, child S, total V) {
	for _, o := range m {
		o.Expanded(count, parent, child, total)
	}
}

func (m MultiObserver[S, V]) ParentLookup(parent, child S) {
	for _, o := range m {
		o.ParentLookup(parent, child)
	}
}
