package bestfirst

// SingleGoal terminates on the state equal to Goal.
type SingleGoal[S Equaler[S]] struct {
	Goal S
}

func (g SingleGoal[S]) IsTerminal(query S) bool { return g.Goal.Equal(query) }

// AnyGoal terminates on the first popped state that belongs to a goal set.
type AnyGoal[S State[S, K], K comparable] struct {
	goals map[K]S
}

func NewAnyGoal[S State[S, K], K comparable](goals ...S) *AnyGoal[S, K] {
	g := &AnyGoal[S, K]{goals: make(map[K]S, len(goals))}
	for _, s := range goals {
		g.goals[s.ID()] = s
	}
	return g
}

func (g *AnyGoal[S, K]) IsTerminal(query S) bool {
	goal, ok := g.goals[query.ID()]
	return ok && goal.Equal(query)
}

// PathLength terminates on the first popped state whose recorded path from
// its start holds at least States states. It needs the expansion table, so
// IsTerminal alone never reports a terminal state.
type PathLength[S Equaler[S], V any] struct {
	States int
}

func (c PathLength[S, V]) IsTerminal(S) bool { return false }

func (c PathLength[S, V]) IsTerminalExpanded(query S, table ExpansionTable[S, V]) bool {
	return len(ReversePath(table, query)) >= c.States
}
