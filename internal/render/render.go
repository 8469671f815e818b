// Package render draws a grid search result as text.
package render

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pdrpinto/bestfirst/internal/grid"
)

// Frame is everything needed to draw one grid.
type Frame struct {
	Space    *grid.Space
	Start    grid.Cell
	Goal     grid.Cell
	Path     []grid.Cell
	Expanded func(grid.Cell) bool
}

const (
	glyphFree     = "."
	glyphWall     = "#"
	glyphExpanded = "o"
	glyphPath     = "*"
	glyphStart    = "S"
	glyphGoal     = "G"
)

var (
	wallStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	expandedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	pathStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	endpointStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

// Grid writes the frame row by row, y growing downwards. Colour is only
// applied when color is set.
func Grid(w io.Writer, f Frame, color bool) error {
	onPath := make(map[grid.Cell]bool, len(f.Path))
	for _, c := range f.Path {
		onPath[c] = true
	}

	var b strings.Builder
	for y := 0; y < f.Space.Height; y++ {
		for x := 0; x < f.Space.Width; x++ {
			c := grid.Cell{X: x, Y: y}
			glyph, style := glyphFree, lipgloss.NewStyle()
			switch {
			case c == f.Start:
				glyph, style = glyphStart, endpointStyle
			case c == f.Goal:
				glyph, style = glyphGoal, endpointStyle
			case onPath[c]:
				glyph, style = glyphPath, pathStyle
			case f.Space.Walls[c]:
				glyph, style = glyphWall, wallStyle
			case f.Expanded != nil && f.Expanded(c):
				glyph, style = glyphExpanded, expandedStyle
			}
			if color {
				glyph = style.Render(glyph)
			}
			b.WriteString(glyph)
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}
