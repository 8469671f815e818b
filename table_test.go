package bestfirst

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdrpinto/bestfirst/internal/grid"
)

// tagged is a state whose id can be made to collide on purpose.
type tagged struct {
	name string
	id   int
}

func (s tagged) ID() int { return s.id }

func (s tagged) Equal(other tagged) bool { return s == other }

// recoverError runs fn and returns the error it panicked with, if any.
func recoverError(t *testing.T, fn func()) (err error) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		var ok bool
		if err, ok = r.(error); !ok {
			t.Fatalf("panic value %v is not an error", r)
		}
	}()
	fn()
	return nil
}

func cell(x, y int) grid.Cell { return grid.Cell{X: x, Y: y} }

func TestHashTable_ExpandIsWriteOnce(t *testing.T) {
	table := NewHashTable[grid.Cell, uint64, int]()
	a, b, c := cell(0, 0), cell(1, 0), cell(2, 0)

	require.True(t, table.Expand(a, a, 0))
	require.True(t, table.Expand(a, b, 1))
	assert.False(t, table.Expand(c, b, 7), "second record of b is ignored")

	assert.Equal(t, a, table.Parent(b))
	assert.Equal(t, 1, table.TotalValue(b))
	assert.Equal(t, 2, table.Len())
}

func TestHashTable_IsExpanded(t *testing.T) {
	table := NewHashTable[grid.Cell, uint64, int]()
	table.Expand(cell(0, 0), cell(0, 1), 1)

	assert.True(t, table.IsExpanded(cell(0, 1)))
	assert.False(t, table.IsExpanded(cell(0, 0)), "a parent is not expanded by being referenced")
}

func TestHashTable_Reset(t *testing.T) {
	table := NewHashTable[grid.Cell, uint64, int]()
	table.Expand(cell(0, 0), cell(0, 0), 0)
	table.Reset()

	assert.Equal(t, 0, table.Len())
	assert.False(t, table.IsExpanded(cell(0, 0)))
	assert.True(t, table.Expand(cell(0, 0), cell(0, 0), 3), "expand after reset records again")
}

func TestHashTable_NotExpandedPanics(t *testing.T) {
	table := NewHashTable[grid.Cell, uint64, int]()

	err := recoverError(t, func() { table.Parent(cell(3, 3)) })
	assert.ErrorIs(t, err, ErrNotExpanded)

	err = recoverError(t, func() { table.TotalValue(cell(3, 3)) })
	assert.ErrorIs(t, err, ErrNotExpanded)
}

func TestHashTable_IDCollisionPanics(t *testing.T) {
	table := NewHashTable[tagged, int, int]()
	first := tagged{name: "first", id: 1}
	table.Expand(first, first, 0)

	err := recoverError(t, func() {
		table.Expand(first, tagged{name: "second", id: 1}, 1)
	})
	assert.True(t, errors.Is(err, ErrIDCollision), "got %v", err)
}

func TestTryTotalValue(t *testing.T) {
	table := NewHashTable[grid.Cell, uint64, float64]()
	table.Expand(cell(0, 0), cell(0, 1), 2.5)
	var a Scalar[float64]

	assert.Equal(t, 2.5, TryTotalValue[grid.Cell, float64](table, a, cell(0, 1)))
	assert.Equal(t, a.Invalid(), TryTotalValue[grid.Cell, float64](table, a, cell(9, 9)))
}

func TestPathReconstruction(t *testing.T) {
	table := NewHashTable[grid.Cell, uint64, int]()
	chain := []grid.Cell{cell(0, 0), cell(1, 0), cell(1, 1), cell(2, 1)}
	table.Expand(chain[0], chain[0], 0)
	for i := 1; i < len(chain); i++ {
		table.Expand(chain[i-1], chain[i], i)
	}
	// a side branch that must not show up
	table.Expand(chain[1], cell(2, 0), 2)

	if diff := cmp.Diff(chain, Path[grid.Cell, int](table, chain[3])); diff != "" {
		t.Errorf("Path mismatch (-want +got):\n%s", diff)
	}
	want := []grid.Cell{chain[3], chain[2], chain[1], chain[0]}
	if diff := cmp.Diff(want, ReversePath[grid.Cell, int](table, chain[3])); diff != "" {
		t.Errorf("ReversePath mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []grid.Cell{chain[0]}, Path[grid.Cell, int](table, chain[0]))
}

func TestPathReconstruction_ZeroCostEdges(t *testing.T) {
	table := NewHashTable[grid.Cell, uint64, int]()
	table.Expand(cell(0, 0), cell(0, 0), 0)
	table.Expand(cell(0, 0), cell(0, 1), 0)
	table.Expand(cell(0, 1), cell(0, 2), 0)

	assert.Len(t, Path[grid.Cell, int](table, cell(0, 2)), 3)
}

func TestPathReconstruction_CyclePanics(t *testing.T) {
	table := NewHashTable[grid.Cell, uint64, int]()
	table.Expand(cell(1, 0), cell(0, 0), 1)
	table.Expand(cell(0, 0), cell(1, 0), 1)

	assert.Panics(t, func() { ReversePath[grid.Cell, int](table, cell(0, 0)) })
}
