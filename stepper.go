package bestfirst

import (
	"fmt"
	"log/slog"
)

// Code is the result of one planner update.
type Code int8

const (
	// CodeSearching means the search is still in progress.
	CodeSearching Code = iota
	// CodeGoalFound means a popped state satisfied the termination criteria.
	CodeGoalFound
	// CodeInfeasible means the frontier ran out, or the state space refused to
	// enumerate a state's successors.
	CodeInfeasible
)

func (c Code) String() string {
	switch c {
	case CodeSearching:
		return "SEARCHING"
	case CodeGoalFound:
		return "GOAL_FOUND"
	case CodeInfeasible:
		return "INFEASIBLE"
	}
	return fmt.Sprintf("Code(%d)", int8(c))
}

// Done reports whether c is terminal.
func (c Code) Done() bool { return c == CodeGoalFound || c == CodeInfeasible }

// Found reports whether c is CodeGoalFound.
func (c Code) Found() bool { return c == CodeGoalFound }

// Options defines parameters for a planner.
type Options struct {
	Logger *slog.Logger
	// Capacity is the number of frontier entries New reserves up front.
	Capacity int
	// PruneDeadEnds makes a state whose successors cannot be enumerated a
	// dead branch instead of ending the whole search as infeasible.
	PruneDeadEnds bool
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithLogger sets the logger used for debug records.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) { o.Logger = logger }
}

// WithCapacity reserves room for n frontier entries in the default queue.
func WithCapacity(n int) Option {
	return func(o *Options) { o.Capacity = n }
}

// WithPruneDeadEnds keeps searching other branches when the state space
// reports a dead end.
func WithPruneDeadEnds() Option {
	return func(o *Options) { o.PruneDeadEnds = true }
}

// Planner drives a best-first search one expansion at a time. It owns its
// queue and table; it is not safe for concurrent use.
type Planner[S State[S, K], K comparable, V any] struct {
	algebra Algebra[V]
	queue   ExpansionQueue[S, V]
	table   ExpansionTable[S, V]
	logger  *slog.Logger
	prune   bool

	last    S
	hasLast bool
}

// New creates a planner with a min-heap queue and a hash table.
func New[S State[S, K], K comparable, V any](algebra Algebra[V], options ...Option) *Planner[S, K, V] {
	opts := applyOptions(options)
	return NewPlanner[S, K, V](
		algebra,
		NewMinHeapQueue[S, V](algebra.Compare, opts.Capacity),
		NewHashTable[S, K, V](),
		options...,
	)
}

// NewPlanner creates a planner over the given queue and table.
func NewPlanner[S State[S, K], K comparable, V any](
	algebra Algebra[V],
	queue ExpansionQueue[S, V],
	table ExpansionTable[S, V],
	options ...Option,
) *Planner[S, K, V] {
	opts := applyOptions(options)
	return &Planner[S, K, V]{
		algebra: algebra,
		queue:   queue,
		table:   table,
		logger:  opts.Logger,
		prune:   opts.PruneDeadEnds,
	}
}

func applyOptions(options []Option) Options {
	opts := Options{Logger: slog.New(slog.DiscardHandler)}
	for _, o := range options {
		o(&opts)
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	return opts
}

// Enqueue seeds the frontier with start states at Null cost. Each start is
// recorded as its own parent.
func (p *Planner[S, K, V]) Enqueue(states ...S) {
	null := p.algebra.Null()
	for _, s := range states {
		p.queue.Enqueue(s, null)
		p.table.Expand(s, s, null)
	}
}

// Reset clears the queue and the table so the planner can be reused.
func (p *Planner[S, K, V]) Reset() {
	p.queue.Reset()
	p.table.Reset()
	var zero S
	p.last, p.hasLast = zero, false
	p.logger.Debug("planner reset")
}

// Update performs one step: pop the least-cost frontier entry, test it
// against criteria and otherwise record and enqueue its unvisited children.
// A child's cost is fixed when it is first discovered, which is exact when all
// edges cost the same.
func (p *Planner[S, K, V]) Update(cost Metric[S, V], space StateSpace[S], criteria TerminationCriteria[S]) Code {
	// Abort if there is nothing left in the queue
	if p.queue.Empty() {
		p.logger.Debug("frontier exhausted", slog.String("code", CodeInfeasible.String()))
		return CodeInfeasible
	}

	pred := p.queue.Next()
	p.last, p.hasLast = pred.State, true

	if p.isTerminal(pred.State, criteria) {
		p.logger.Debug("goal found",
			slog.Any("state", pred.State),
			slog.Any("cost", pred.Value),
		)
		return CodeGoalFound
	}

	complete := space.ForEachChild(pred.State, func(child S) {
		if p.table.IsExpanded(child) {
			return
		}
		next := p.algebra.Add(pred.Value, cost.Cost(pred.State, child))
		if p.table.Expand(pred.State, child, next) {
			p.queue.Enqueue(child, next)
		}
	})
	if complete {
		return CodeSearching
	}
	if p.prune {
		p.logger.Debug("dead end pruned", slog.Any("state", pred.State))
		return CodeSearching
	}
	p.logger.Debug("dead end", slog.Any("state", pred.State), slog.String("code", CodeInfeasible.String()))
	return CodeInfeasible
}

func (p *Planner[S, K, V]) isTerminal(s S, criteria TerminationCriteria[S]) bool {
	if aware, ok := criteria.(ExpansionAwareCriteria[S, V]); ok {
		return aware.IsTerminalExpanded(s, p.table)
	}
	return criteria.IsTerminal(s)
}

// Last returns the state popped by the most recent Update, if any.
func (p *Planner[S, K, V]) Last() (S, bool) {
	return p.last, p.hasLast
}

func (p *Planner[S, K, V]) Queue() ExpansionQueue[S, V] { return p.queue }

func (p *Planner[S, K, V]) Table() ExpansionTable[S, V] { return p.table }

// Path returns the start-to-terminal path recorded for an expanded state.
func (p *Planner[S, K, V]) Path(terminal S) []S {
	return Path(p.table, terminal)
}

// ReversePath returns the path from terminal back to its start state.
func (p *Planner[S, K, V]) ReversePath(terminal S) []S {
	return ReversePath(p.table, terminal)
}

// TryTotalValue returns the accumulated cost of s, or Invalid if s was never
// expanded.
func (p *Planner[S, K, V]) TryTotalValue(s S) V {
	return TryTotalValue(p.table, p.algebra, s)
}
