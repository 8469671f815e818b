// Package scenario loads grid search scenarios from YAML.
package scenario

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/pdrpinto/bestfirst/internal/grid"
)

// Scenario describes one grid search.
type Scenario struct {
	Width         int           `yaml:"width" validate:"gt=0"`
	Height        int           `yaml:"height" validate:"gt=0"`
	Start         [2]int        `yaml:"start"`
	Goal          [2]int        `yaml:"goal"`
	Walls         [][2]int      `yaml:"walls"`
	Connectivity  int           `yaml:"connectivity" validate:"oneof=4 8"`
	Heuristic     bool          `yaml:"heuristic"`
	MaxIterations int           `yaml:"max_iterations" validate:"gte=0"`
	TimeBudget    time.Duration `yaml:"time_budget" validate:"gte=0"`
}

// ErrStartBlocked is returned when the start cell is outside the grid or on
// a wall. The goal is deliberately not checked: an unreachable goal is a
// valid, infeasible scenario.
var ErrStartBlocked = errors.New("start cell is outside the grid or on a wall")

var validate = validator.New()

// Default is the reference scenario: a 15x15 open grid from (3, 5) to (10, 4).
func Default() Scenario {
	return Scenario{
		Width:        15,
		Height:       15,
		Start:        [2]int{3, 5},
		Goal:         [2]int{10, 4},
		Connectivity: 4,
	}
}

// Load reads path over the defaults and validates the result.
func Load(path string) (Scenario, error) {
	s := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("read scenario: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return s, fmt.Errorf("invalid scenario %s: %w", path, err)
	}
	return s, nil
}

// Validate checks field ranges and that the start cell is usable.
func (s Scenario) Validate() error {
	if err := validate.Struct(s); err != nil {
		return err
	}
	if !s.Space().Free(s.StartCell()) {
		return fmt.Errorf("%w: %v", ErrStartBlocked, s.StartCell())
	}
	return nil
}

func (s Scenario) StartCell() grid.Cell { return grid.Cell{X: s.Start[0], Y: s.Start[1]} }

func (s Scenario) GoalCell() grid.Cell { return grid.Cell{X: s.Goal[0], Y: s.Goal[1]} }

// Space builds the grid state space described by s.
func (s Scenario) Space() *grid.Space {
	space := grid.NewSpace(s.Width, s.Height)
	space.Connectivity = grid.Connectivity(s.Connectivity)
	for _, w := range s.Walls {
		space.Walls[grid.Cell{X: w[0], Y: w[1]}] = true
	}
	return space
}
