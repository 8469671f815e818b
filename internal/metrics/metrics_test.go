package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdrpinto/bestfirst"
	"github.com/pdrpinto/bestfirst/internal/grid"
)

func TestTableObserver_Counts(t *testing.T) {
	reg := prometheus.NewRegistry()
	obs, err := NewTableObserver[grid.Cell, int](reg, "test")
	require.NoError(t, err)

	planner := bestfirst.NewPlanner[grid.Cell, uint64, int](
		bestfirst.Scalar[int]{},
		bestfirst.NewMinHeapQueue[grid.Cell, int](bestfirst.Scalar[int]{}.Compare, 0),
		bestfirst.NewHookedTable[grid.Cell, int](bestfirst.NewHashTable[grid.Cell, uint64, int](), obs, bestfirst.DefaultHookFlags),
	)
	res, err := bestfirst.Search(t.Context(), planner, grid.Manhattan{}, grid.NewSpace(3, 3),
		bestfirst.SingleGoal[grid.Cell]{Goal: grid.Cell{X: 2, Y: 0}}, []grid.Cell{{X: 0, Y: 0}})
	require.NoError(t, err)
	require.Len(t, res.Path, 3)

	assert.Equal(t, 1.0, testutil.ToFloat64(obs.Resets))
	assert.Equal(t, float64(planner.Table().Len()), testutil.ToFloat64(obs.Expansions))
	// one lookup per state on the path, the start included
	assert.Equal(t, 3.0, testutil.ToFloat64(obs.ParentLookups))
}

func TestTableObserver_Labels(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewTableObserver[grid.Cell, int](reg, "a")
	require.NoError(t, err)
	_, err = NewTableObserver[grid.Cell, int](reg, "b")
	require.NoError(t, err, "distinct planner labels share a registry")

	n, err := testutil.GatherAndCount(reg, "bestfirst_table_expansions_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestTableObserver_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewTableObserver[grid.Cell, int](reg, "same")
	require.NoError(t, err)

	_, err = NewTableObserver[grid.Cell, int](reg, "same")
	var already prometheus.AlreadyRegisteredError
	assert.ErrorAs(t, err, &already)
}
