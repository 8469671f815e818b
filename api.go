package bestfirst

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Equaler is implemented by states that can be compared for identity.
type Equaler[S any] interface {
	Equal(other S) bool
}

// State is the planning unit. Two states are the same search node iff their
// ids are equal; distinct states sharing an id break the search.
type State[S any, K comparable] interface {
	Equaler[S]
	ID() K
}

// Metric returns the cost of moving from parent to child. It must not be
// negative for the frontier order to hold; the planner does not check.
type Metric[S, V any] interface {
	Cost(parent, child S) V
}

// MetricFunc adapts a function to Metric.
type MetricFunc[S, V any] func(parent, child S) V

func (f MetricFunc[S, V]) Cost(parent, child S) V { return f(parent, child) }

// StateSpace enumerates the successors of a state. ForEachChild calls visit
// once per child and returns false when parent should be treated as a dead
// end.
type StateSpace[S any] interface {
	ForEachChild(parent S, visit func(child S)) bool
}

// StateSpaceFunc adapts a function to StateSpace.
type StateSpaceFunc[S any] func(parent S, visit func(child S)) bool

func (f StateSpaceFunc[S]) ForEachChild(parent S, visit func(child S)) bool { return f(parent, visit) }

// TerminationCriteria decides whether a popped state ends the search.
type TerminationCriteria[S any] interface {
	IsTerminal(query S) bool
}

// ExpansionAwareCriteria is a TerminationCriteria that also looks at the
// expansion table. When the criteria handed to Update implements it,
// IsTerminalExpanded is used instead of IsTerminal.
type ExpansionAwareCriteria[S, V any] interface {
	TerminationCriteria[S]
	IsTerminalExpanded(query S, table ExpansionTable[S, V]) bool
}

// CriteriaFunc adapts a predicate to TerminationCriteria.
type CriteriaFunc[S any] func(query S) bool

func (f CriteriaFunc[S]) IsTerminal(query S) bool { return f(query) }

// Result contains the outcome of a search
type Result[S, V any] struct {
	Code       Code
	Iterations int
	// Terminal is the state that satisfied the criteria. Only set when
	// Code is CodeGoalFound.
	Terminal S
	// Path runs from a start state to Terminal.
	Path    []S
	Cost    V
	Elapsed time.Duration
}

// RunOptions defines parameters for the driver loop.
type RunOptions struct {
	MaxIterations  int
	TimeBudget     time.Duration
	TracerProvider trace.TracerProvider
	MeterProvider  metric.MeterProvider
}

// RunOption is a function that modifies RunOptions.
type RunOption func(*RunOptions)

// WithMaxIterations caps the number of Update calls. Zero means no cap.
func WithMaxIterations(n int) RunOption {
	return func(o *RunOptions) { o.MaxIterations = n }
}

// WithTimeBudget caps wall-clock time, checked between iterations.
func WithTimeBudget(d time.Duration) RunOption {
	return func(o *RunOptions) { o.TimeBudget = d }
}

// WithTracerProvider overrides the global otel tracer provider.
func WithTracerProvider(tp trace.TracerProvider) RunOption {
	return func(o *RunOptions) { o.TracerProvider = tp }
}

// WithMeterProvider overrides the global otel meter provider.
func WithMeterProvider(mp metric.MeterProvider) RunOption {
	return func(o *RunOptions) { o.MeterProvider = mp }
}

// Search resets the planner, seeds it with starts and runs it to a terminal
// code.
func Search[S State[S, K], K comparable, V any](
	ctx context.Context,
	planner *Planner[S, K, V],
	cost Metric[S, V],
	space StateSpace[S],
	criteria TerminationCriteria[S],
	starts []S,
	options ...RunOption,
) (Result[S, V], error) {
	planner.Reset()
	planner.Enqueue(starts...)
	return Run(ctx, planner, cost, space, criteria, options...)
}

// Run calls Update until the planner reports a terminal code, the context
// is done or a budget runs out. The context and budgets are only checked
// between iterations.
//
// On CodeGoalFound the result carries the terminal state, its path and its
// accumulated cost. A budget stop returns the partial result with
// CodeSearching and ErrBudgetExhausted.
func Run[S State[S, K], K comparable, V any](
	ctx context.Context,
	planner *Planner[S, K, V],
	cost Metric[S, V],
	space StateSpace[S],
	criteria TerminationCriteria[S],
	options ...RunOption,
) (Result[S, V], error) {
	// --- Apply options ---
	runOptions := RunOptions{}
	for _, option := range options {
		option(&runOptions)
	}

	ctx, span, tel := startRun(ctx, runOptions, planner.Queue().Len())
	started := time.Now()

	result := Result[S, V]{Code: CodeSearching}
	var err error

	// --- Driver loop ---
	for {
		if err = ctx.Err(); err != nil {
			break
		}
		if runOptions.MaxIterations > 0 && result.Iterations >= runOptions.MaxIterations {
			err = fmt.Errorf("%w: %d iterations", ErrBudgetExhausted, result.Iterations)
			break
		}
		if runOptions.TimeBudget > 0 && time.Since(started) >= runOptions.TimeBudget {
			err = fmt.Errorf("%w: %s elapsed", ErrBudgetExhausted, time.Since(started))
			break
		}

		result.Iterations++
		result.Code = planner.Update(cost, space, criteria)
		if result.Code.Done() {
			break
		}
	}
	result.Elapsed = time.Since(started)

	if result.Code.Found() {
		terminal, _ := planner.Last()
		result.Terminal = terminal
		result.Path = planner.Path(terminal)
		result.Cost = planner.Table().TotalValue(terminal)
	}

	tel.finish(ctx, span, result.Code, result.Iterations, len(result.Path), result.Elapsed, err)
	return result, err
}
