package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/pdrpinto/bestfirst"
	"github.com/pdrpinto/bestfirst/internal/grid"
	"github.com/pdrpinto/bestfirst/internal/render"
	"github.com/pdrpinto/bestfirst/internal/scenario"
)

type flags struct {
	config        string
	width         int
	height        int
	start         string
	goal          string
	connectivity  int
	astar         bool
	verbose       bool
	trace         bool
	render        bool
	noColor       bool
	maxIterations int
	timeout       time.Duration
	logLevel      string
}

func newRootCmd() *cobra.Command {
	f := &flags{}
	cmd := &cobra.Command{
		Use:   "gridplan",
		Short: "Shortest path search on a 2D grid",
		Long: `Runs uniform-cost (or, with --astar, heuristic-guided) search on a bounded
grid and prints the planner result code, iteration count and path.

Scenario fields come from --config (YAML) and are overridden by flags.

Examples:
  gridplan
  gridplan --start 0,0 --goal 14,14 --astar --render
  gridplan --config maze.yaml --verbose`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		Version:      version,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlan(cmd, f)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.config, "config", "c", "", "Scenario YAML file")
	fl.IntVar(&f.width, "width", 0, "Grid width")
	fl.IntVar(&f.height, "height", 0, "Grid height")
	fl.StringVar(&f.start, "start", "", "Start cell as x,y")
	fl.StringVar(&f.goal, "goal", "", "Goal cell as x,y")
	fl.IntVar(&f.connectivity, "connectivity", 0, "Neighbourhood size: 4 or 8")
	fl.BoolVar(&f.astar, "astar", false, "Guide the search with the Manhattan distance to the goal")
	fl.BoolVarP(&f.verbose, "verbose", "v", false, "Print every expansion table event")
	fl.BoolVar(&f.trace, "trace", false, "Export the run span to stderr")
	fl.BoolVar(&f.render, "render", false, "Draw the grid after the search")
	fl.BoolVar(&f.noColor, "no-color", false, "Disable colour when drawing")
	fl.IntVar(&f.maxIterations, "max-iterations", 0, "Stop after this many planner updates (0 = no limit)")
	fl.DurationVar(&f.timeout, "timeout", 0, "Stop after this much wall-clock time (0 = no limit)")
	fl.StringVar(&f.logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	return cmd
}

// loadScenario applies the flags the user set on top of the config file.
func loadScenario(cmd *cobra.Command, f *flags) (scenario.Scenario, error) {
	sc := scenario.Default()
	if f.config != "" {
		var err error
		if sc, err = scenario.Load(f.config); err != nil {
			return sc, err
		}
	}

	changed := cmd.Flags().Changed
	if changed("width") {
		sc.Width = f.width
	}
	if changed("height") {
		sc.Height = f.height
	}
	if changed("connectivity") {
		sc.Connectivity = f.connectivity
	}
	if changed("astar") {
		sc.Heuristic = f.astar
	}
	if changed("max-iterations") {
		sc.MaxIterations = f.maxIterations
	}
	if changed("timeout") {
		sc.TimeBudget = f.timeout
	}
	if changed("start") {
		c, err := parseCell(f.start)
		if err != nil {
			return sc, fmt.Errorf("--start: %w", err)
		}
		sc.Start = c
	}
	if changed("goal") {
		c, err := parseCell(f.goal)
		if err != nil {
			return sc, fmt.Errorf("--goal: %w", err)
		}
		sc.Goal = c
	}
	return sc, sc.Validate()
}

func parseCell(s string) ([2]int, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return [2]int{}, fmt.Errorf("want x,y, got %q", s)
	}
	var c [2]int
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return [2]int{}, fmt.Errorf("parse %q: %w", s, err)
		}
		c[i] = v
	}
	return c, nil
}

func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("--log-level: %w", err)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

// outcome is the part of a search the report needs, independent of the
// cost type.
type outcome struct {
	code       bestfirst.Code
	iterations int
	path       []grid.Cell
	elapsed    time.Duration
	cost       string
	expanded   func(grid.Cell) bool
}

func runPlan(cmd *cobra.Command, f *flags) error {
	sc, err := loadScenario(cmd, f)
	if err != nil {
		return err
	}

	logger, err := newLogger(cmd.ErrOrStderr(), f.logLevel)
	if err != nil {
		return err
	}
	logger = logger.With(slog.String("run_id", uuid.NewString()))

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var runOptions []bestfirst.RunOption
	if sc.MaxIterations > 0 {
		runOptions = append(runOptions, bestfirst.WithMaxIterations(sc.MaxIterations))
	}
	if sc.TimeBudget > 0 {
		runOptions = append(runOptions, bestfirst.WithTimeBudget(sc.TimeBudget))
	}
	if f.trace {
		exporter, err := stdouttrace.New(stdouttrace.WithWriter(cmd.ErrOrStderr()), stdouttrace.WithPrettyPrint())
		if err != nil {
			return fmt.Errorf("create trace exporter: %w", err)
		}
		tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
		defer func() { _ = tp.Shutdown(context.Background()) }()
		runOptions = append(runOptions, bestfirst.WithTracerProvider(tp))
	}

	out := cmd.OutOrStdout()
	logger.Info("planning",
		slog.Any("start", sc.StartCell()),
		slog.Any("goal", sc.GoalCell()),
		slog.Bool("heuristic", sc.Heuristic),
	)

	var o outcome
	var searchErr error
	if sc.Heuristic {
		algebra := bestfirst.Heuristic[int, int]{}
		metric := bestfirst.HeuristicMetric[grid.Cell, int, int]{
			Metric:   grid.Manhattan{},
			Estimate: grid.ManhattanTo(sc.GoalCell()),
		}
		o, searchErr = solve[bestfirst.HeuristicValue[int, int]](ctx, sc, algebra, metric, f.verbose, out, logger, runOptions,
			func(v bestfirst.HeuristicValue[int, int]) string { return strconv.Itoa(v.G()) })
	} else {
		o, searchErr = solve[int](ctx, sc, bestfirst.Scalar[int]{}, grid.Manhattan{}, f.verbose, out, logger, runOptions,
			strconv.Itoa)
	}

	writeReport(out, sc, o)
	if f.render {
		color := !f.noColor && isTerminal(out)
		if err := render.Grid(out, render.Frame{
			Space:    sc.Space(),
			Start:    sc.StartCell(),
			Goal:     sc.GoalCell(),
			Path:     o.path,
			Expanded: o.expanded,
		}, color); err != nil {
			return err
		}
	}
	return searchErr
}

func solve[V any](
	ctx context.Context,
	sc scenario.Scenario,
	algebra bestfirst.Algebra[V],
	metric bestfirst.Metric[grid.Cell, V],
	verbose bool,
	out io.Writer,
	logger *slog.Logger,
	runOptions []bestfirst.RunOption,
	format func(V) string,
) (outcome, error) {
	var table bestfirst.ExpansionTable[grid.Cell, V] = bestfirst.NewHashTable[grid.Cell, uint64, V]()
	if verbose {
		table = bestfirst.NewHookedTable[grid.Cell, V](table, bestfirst.WriterObserver[grid.Cell, V]{W: out}, bestfirst.DefaultHookFlags)
	}
	planner := bestfirst.NewPlanner[grid.Cell, uint64, V](
		algebra,
		bestfirst.NewMinHeapQueue[grid.Cell, V](algebra.Compare, sc.Width*sc.Height),
		table,
		bestfirst.WithLogger(logger),
	)

	res, err := bestfirst.Search(ctx, planner, metric, sc.Space(),
		bestfirst.SingleGoal[grid.Cell]{Goal: sc.GoalCell()},
		[]grid.Cell{sc.StartCell()},
		runOptions...,
	)
	o := outcome{
		code:       res.Code,
		iterations: res.Iterations,
		path:       res.Path,
		elapsed:    res.Elapsed,
		expanded:   table.IsExpanded,
	}
	if res.Code.Found() {
		o.cost = format(res.Cost)
	}
	return o, err
}

func writeReport(w io.Writer, sc scenario.Scenario, o outcome) {
	start, goal := sc.StartCell(), sc.GoalCell()
	fmt.Fprintf(w, "t plan: %f\n", o.elapsed.Seconds())
	fmt.Fprintf(w, "code  : %s\n", o.code)
	fmt.Fprintf(w, "iters : %d\n", o.iterations)
	fmt.Fprintf(w, "start : %v\n", start)
	fmt.Fprintf(w, "goal  : %v\n", goal)
	if o.cost != "" {
		fmt.Fprintf(w, "cost  : %s\n", o.cost)
	}
	fmt.Fprintf(w, "path  : (%d states)\n", len(o.path))
	for _, c := range o.path {
		switch c {
		case goal:
			fmt.Fprintf(w, "%v goal\n", c)
		case start:
			fmt.Fprintf(w, "%v start\n", c)
		default:
			fmt.Fprintf(w, "%v\n", c)
		}
	}
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd()))
}
