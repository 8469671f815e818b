package bestfirst

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/pdrpinto/bestfirst"

// runInstruments are the otel instruments recorded once per Run.
type runInstruments struct {
	runs       metric.Int64Counter
	iterations metric.Int64Histogram
	duration   metric.Float64Histogram
}

// Instruments backed by the global meter provider, created on first use.
var (
	globalInstruments *runInstruments
	instrumentsOnce   sync.Once
	instrumentsErr    error
)

func newRunInstruments(meter metric.Meter) (*runInstruments, error) {
	runs, err := meter.Int64Counter(
		"bestfirst_runs_total",
		metric.WithDescription("Number of completed search runs by result code"),
	)
	if err != nil {
		return nil, err
	}

	iterations, err := meter.Int64Histogram(
		"bestfirst_run_iterations",
		metric.WithDescription("Planner updates per search run"),
	)
	if err != nil {
		return nil, err
	}

	duration, err := meter.Float64Histogram(
		"bestfirst_run_duration_seconds",
		metric.WithDescription("Wall-clock duration of search runs"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	return &runInstruments{runs: runs, iterations: iterations, duration: duration}, nil
}

// instrumentsFor returns nil when the instruments cannot be created; a run
// is never failed because of telemetry.
func instrumentsFor(mp metric.MeterProvider) *runInstruments {
	if mp == nil {
		instrumentsOnce.Do(func() {
			globalInstruments, instrumentsErr = newRunInstruments(otel.Meter(instrumentationName))
		})
		if instrumentsErr != nil {
			return nil
		}
		return globalInstruments
	}
	ins, err := newRunInstruments(mp.Meter(instrumentationName))
	if err != nil {
		return nil
	}
	return ins
}

func startRun(ctx context.Context, o RunOptions, frontier int) (context.Context, trace.Span, *runInstruments) {
	tp := o.TracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	ctx, span := tp.Tracer(instrumentationName).Start(ctx, "bestfirst.Run",
		trace.WithAttributes(attribute.Int("bestfirst.frontier.initial", frontier)),
	)
	return ctx, span, instrumentsFor(o.MeterProvider)
}

func (ins *runInstruments) finish(
	ctx context.Context,
	span trace.Span,
	code Code,
	iterations int,
	pathLength int,
	elapsed time.Duration,
	err error,
) {
	defer span.End()

	span.SetAttributes(
		attribute.String("bestfirst.code", code.String()),
		attribute.Int("bestfirst.iterations", iterations),
		attribute.Int("bestfirst.path.length", pathLength),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}

	if ins == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String("code", code.String()))
	ins.runs.Add(ctx, 1, attrs)
	ins.iterations.Record(ctx, int64(iterations), attrs)
	ins.duration.Record(ctx, elapsed.Seconds(), attrs)
}
