// Package grid is a bounded 2D grid state space used by the drivers and
// tests: cells, walls, 4- or 8-connected moves and Manhattan costs.
package grid

import "fmt"

// Cell is a grid coordinate.
type Cell struct {
	X, Y int
}

// ID packs both coordinates into one word.
func (c Cell) ID() uint64 {
	return uint64(uint32(int32(c.X)))<<32 | uint64(uint32(int32(c.Y)))
}

func (c Cell) Equal(other Cell) bool { return c == other }

func (c Cell) String() string { return fmt.Sprintf("(%d, %d)", c.X, c.Y) }

// Connectivity is the number of neighbours a cell has in an open grid.
type Connectivity int

const (
	Four  Connectivity = 4
	Eight Connectivity = 8
)

var (
	fourMoves  = []Cell{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	eightMoves = []Cell{{1, 0}, {-1, 0}, {0, 1}, {0, -1}, {1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
)

// Space is a Width x Height grid anchored at (0, 0).
type Space struct {
	Width, Height int
	Walls         map[Cell]bool
	Connectivity  Connectivity
}

// NewSpace returns an open 4-connected grid.
func NewSpace(width, height int) *Space {
	return &Space{Width: width, Height: height, Walls: map[Cell]bool{}, Connectivity: Four}
}

// In reports whether c lies inside the bounds.
func (s *Space) In(c Cell) bool {
	return c.X >= 0 && c.X < s.Width && c.Y >= 0 && c.Y < s.Height
}

// Free reports whether c is inside the bounds and not a wall.
func (s *Space) Free(c Cell) bool { return s.In(c) && !s.Walls[c] }

// ForEachChild visits every free neighbour of parent. It never reports a
// dead end: a boxed-in cell simply has no children.
func (s *Space) ForEachChild(parent Cell, visit func(child Cell)) bool {
	moves := fourMoves
	if s.Connectivity == Eight {
		moves = eightMoves
	}
	for _, d := range moves {
		child := Cell{parent.X + d.X, parent.Y + d.Y}
		if s.Free(child) {
			visit(child)
		}
	}
	return true
}

// Manhattan is the L1 distance metric between cells.
type Manhattan struct{}

func (Manhattan) Cost(parent, child Cell) int { return Distance(parent, child) }

// Distance returns the Manhattan distance between a and b.
func Distance(a, b Cell) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

// ManhattanTo returns an estimate of the remaining distance to goal.
func ManhattanTo(goal Cell) func(Cell) int {
	return func(c Cell) int { return Distance(c, goal) }
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
