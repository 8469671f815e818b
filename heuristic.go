package bestfirst

import "cmp"

// HeuristicValue is a composite cost carrying the true cost g and a
// heuristic estimate h, ordered by f = g + h.
//
// Only f and h are stored; g is recovered as f - h. Arithmetic distributes
// over both components.
type HeuristicValue[G, H Number] struct {
	f G
	h H
}

// NewHeuristicValue builds the composite of true cost g and estimate h.
func NewHeuristicValue[G, H Number](g G, h H) HeuristicValue[G, H] {
	return HeuristicValue[G, H]{f: g + G(h), h: h}
}

// NullHeuristic is the composite identity (0, 0).
func NullHeuristic[G, H Number]() HeuristicValue[G, H] {
	return HeuristicValue[G, H]{}
}

// InvalidHeuristic stores the invalid sentinel of each component as-is,
// without summing them into f.
func InvalidHeuristic[G, H Number]() HeuristicValue[G, H] {
	return HeuristicValue[G, H]{f: Invalid[G](), h: Invalid[H]()}
}

// F returns g + h.
func (v HeuristicValue[G, H]) F() G { return v.f }

// G returns the true cost component.
func (v HeuristicValue[G, H]) G() G { return v.f - G(v.h) }

// H returns the heuristic component.
func (v HeuristicValue[G, H]) H() H { return v.h }

func (v HeuristicValue[G, H]) Add(o HeuristicValue[G, H]) HeuristicValue[G, H] {
	return HeuristicValue[G, H]{f: v.f + o.f, h: v.h + o.h}
}

func (v HeuristicValue[G, H]) Sub(o HeuristicValue[G, H]) HeuristicValue[G, H] {
	return HeuristicValue[G, H]{f: v.f - o.f, h: v.h - o.h}
}

func (v HeuristicValue[G, H]) Neg() HeuristicValue[G, H] {
	return HeuristicValue[G, H]{f: -v.f, h: -v.h}
}

// Scale multiplies both components by k, truncating back to G and H.
func (v HeuristicValue[G, H]) Scale(k float64) HeuristicValue[G, H] {
	return HeuristicValue[G, H]{f: G(float64(v.f) * k), h: H(float64(v.h) * k)}
}

// Compare orders by f only.
func (v HeuristicValue[G, H]) Compare(o HeuristicValue[G, H]) int { return cmp.Compare(v.f, o.f) }

func (v HeuristicValue[G, H]) Less(o HeuristicValue[G, H]) bool { return v.f < o.f }

// Equal reports whether both values have the same f, whatever their split.
func (v HeuristicValue[G, H]) Equal(o HeuristicValue[G, H]) bool { return v.f == o.f }

// Heuristic is the Algebra over HeuristicValue.
type Heuristic[G, H Number] struct{}

func (Heuristic[G, H]) Null() HeuristicValue[G, H] { return NullHeuristic[G, H]() }

func (Heuristic[G, H]) Invalid() HeuristicValue[G, H] { return InvalidHeuristic[G, H]() }

func (Heuristic[G, H]) Add(a, b HeuristicValue[G, H]) HeuristicValue[G, H] { return a.Add(b) }

func (Heuristic[G, H]) Compare(a, b HeuristicValue[G, H]) int { return a.Compare(b) }

// HeuristicMetric turns a scalar metric and an estimate into a composite
// metric for heuristic-guided search.
//
// Each edge contributes (cost, estimate(child) - estimate(parent)), so the
// accumulated h of a state telescopes to estimate(state) - estimate(start)
// while the accumulated g stays exact. With a single start this orders the
// frontier by g + estimate, shifted by a constant. H must be signed or
// floating point.
type HeuristicMetric[S any, G, H Number] struct {
	Metric   Metric[S, G]
	Estimate func(S) H
}

func (m HeuristicMetric[S, G, H]) Cost(parent, child S) HeuristicValue[G, H] {
	return NewHeuristicValue(m.Metric.Cost(parent, child), m.Estimate(child)-m.Estimate(parent))
}
