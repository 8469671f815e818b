package bestfirst

import (
	"cmp"
	"math"
	"reflect"

	"golang.org/x/exp/constraints"
)

// Number is the set of built-in scalar cost types.
type Number interface {
	constraints.Integer | constraints.Float
}

// Null returns the identity cost: the accumulated cost of a start state.
func Null[N Number]() N {
	return 0
}

// Invalid returns the "unreachable" cost, the largest value N can hold.
func Invalid[N Number]() N {
	var v N
	rv := reflect.ValueOf(&v).Elem()
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		rv.SetInt(math.MaxInt64 >> (64 - rv.Type().Bits()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		rv.SetUint(math.MaxUint64 >> (64 - rv.Type().Bits()))
	case reflect.Float32:
		rv.SetFloat(math.MaxFloat32)
	case reflect.Float64:
		rv.SetFloat(math.MaxFloat64)
	}
	return v
}

// Algebra is what the planner needs to know about a cost type V: its two
// distinguished constants, how to sum two costs and how to order them.
//
// Implementations must make Add monotone for the costs a Metric produces,
// otherwise the frontier stops being non-decreasing.
type Algebra[V any] interface {
	Null() V
	Invalid() V
	Add(a, b V) V
	Compare(a, b V) int
}

// Scalar is the Algebra over plain numbers.
type Scalar[N Number] struct{}

func (Scalar[N]) Null() N { return Null[N]() }

func (Scalar[N]) Invalid() N { return Invalid[N]() }

func (Scalar[N]) Add(a, b N) N { return a + b }

func (Scalar[N]) Compare(a, b N) int { return cmp.Compare(a, b) }
