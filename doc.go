// Package bestfirst provides a generic best-first graph search engine.
//
// A Planner expands states in non-decreasing accumulated cost order
// (Dijkstra / uniform-cost search) over any state space described by four
// policies supplied by the caller:
//
//   - State: a value with a stable id and an equality test.
//   - Metric: the cost of moving from a parent to a child.
//   - StateSpace: enumerates the children of a state.
//   - TerminationCriteria: decides when a popped state ends the search.
//
// Costs are plain numbers through the Scalar algebra, or HeuristicValue
// through the Heuristic algebra, which orders by g + h and enables
// A*-style guidance on the same engine.
//
// It exposes two ways to drive a search:
//
//   - Planner.Update: one expansion per call, for UIs and debugging tools.
//   - Search / Run: the driver loop, with iteration and time budgets and
//     OpenTelemetry tracing.
//
// The frontier (ExpansionQueue) and the visited table (ExpansionTable) are
// pluggable; HookedTable decorates any table to observe its events.
package bestfirst
