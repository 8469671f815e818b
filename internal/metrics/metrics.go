// Package metrics exports expansion table events as Prometheus counters.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "bestfirst"

// TableObserver counts table events. It implements
// bestfirst.TableObserver for any state and value type.
type TableObserver[S, V any] struct {
	Resets        prometheus.Counter
	Expansions    prometheus.Counter
	ParentLookups prometheus.Counter
}

// NewTableObserver creates the counters and registers them with reg.
// The label distinguishes planners sharing one registry.
func NewTableObserver[S, V any](reg prometheus.Registerer, planner string) (*TableObserver[S, V], error) {
	labels := prometheus.Labels{"planner": planner}
	o := &TableObserver[S, V]{
		Resets: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   "table",
			Name:        "resets_total",
			Help:        "Number of expansion table resets",
			ConstLabels: labels,
		}),
		Expansions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   "table",
			Name:        "expansions_total",
			Help:        "Number of states newly recorded in the expansion table",
			ConstLabels: labels,
		}),
		ParentLookups: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   "table",
			Name:        "parent_lookups_total",
			Help:        "Number of parent lookups, mostly from path reconstruction",
			ConstLabels: labels,
		}),
	}
	for _, c := range []prometheus.Collector{o.Resets, o.Expansions, o.ParentLookups} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return o, nil
}

func (o *TableObserver[S, V]) TableReset() { o.Resets.Inc() }

func (o *TableObserver[S, V]) Expanded(int, S, S, V) { o.Expansions.Inc() }

func (o *TableObserver[S, V]) ParentLookup(S, S) { o.ParentLookups.Inc() }
