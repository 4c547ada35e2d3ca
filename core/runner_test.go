package core_test

import (
	"context"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/griduniverse/griduniverse-go/analysis"
	"github.com/griduniverse/griduniverse-go/core"
	"github.com/griduniverse/griduniverse-go/grid"
	"github.com/griduniverse/griduniverse-go/policies"
)

func TestComparisonRun(t *testing.T) {
	l, err := grid.NewLayout(grid.Config{
		Width:         4,
		Height:        4,
		InitialStates: []int{0},
		GoalStates:    []int{15},
	})
	require.NoError(t, err)

	returns := analysis.NewReturnAnalyzer()
	recorded := &recordingComparator{}

	cmp := core.NewComparison()
	cmp.AddAnalysis("Returns", returns, recorded)
	cmp.AddExperiment(&core.Experiment{
		Name:        "Random",
		Environment: grid.NewEnvWithSource(l, rand.NewSource(21)),
		Policy:      policies.NewRandomPolicy(),
	})

	cmp.Run(context.Background(), 1, &core.RunConfig{
		Episodes:                     10,
		Horizon:                      30,
		EpisodeTimeout:               5 * time.Second,
		ThresholdConsecutiveErrors:   3,
		ThresholdConsecutiveTimeouts: 3,
	})

	require.Len(t, recorded.names, 1)
	assert.Equal(t, "Random", recorded.names[0])
	require.Len(t, recorded.datasets, 1)

	dataset, ok := recorded.datasets[0].(*analysis.ReturnDataset)
	require.True(t, ok)
	assert.NotEmpty(t, dataset.Returns)
	for _, steps := range dataset.Steps {
		assert.LessOrEqual(t, steps, 30)
	}
}

func TestParallelComparisonDeliversAllDatasets(t *testing.T) {
	l, err := grid.NewLayout(grid.Config{
		Width:         4,
		Height:        4,
		InitialStates: []int{0},
		GoalStates:    []int{15},
	})
	require.NoError(t, err)

	recorded := &recordingComparatorConstructor{}
	cmp := core.NewParallelComparison()
	cmp.AddAnalysis("Returns", &analysis.ReturnAnalyzerConstructor{}, recorded)

	names := make([]string, 0)
	for i := 0; i < 4; i++ {
		name := fmt.Sprintf("Random-%d", i)
		names = append(names, name)
		cmp.AddExperiment(&core.ParallelExperiment{
			Name:        name,
			Environment: &grid.EnvConstructor{Layout: l, Seed: int64(i + 1)},
			Policy:      &policies.RandomPolicyConstructor{},
		})
	}

	cmp.Run(context.Background(), 2, &core.RunConfig{
		Episodes:                     2,
		Horizon:                      10,
		EpisodeTimeout:               5 * time.Second,
		ThresholdConsecutiveErrors:   3,
		ThresholdConsecutiveTimeouts: 3,
	}, 2)

	// every run hands the comparator one non-nil dataset per experiment
	require.Len(t, recorded.datasets, 2)
	for run, datasets := range recorded.datasets {
		require.Len(t, datasets, 4, "run %d", run)
		assert.ElementsMatch(t, names, recorded.names[run])
		for i, d := range datasets {
			require.NotNil(t, d, "run %d experiment %s", run, recorded.names[run][i])
			dataset, ok := d.(*analysis.ReturnDataset)
			require.True(t, ok)
			assert.NotEmpty(t, dataset.Returns)
		}
	}
}

type recordingComparator struct {
	names    []string
	datasets []core.DataSet
}

func (r *recordingComparator) Compare(names []string, datasets []core.DataSet) {
	r.names = names
	r.datasets = datasets
}

// recordingComparatorConstructor hands itself out and appends one entry per
// Compare call.
type recordingComparatorConstructor struct {
	names    [][]string
	datasets [][]core.DataSet
}

func (r *recordingComparatorConstructor) NewComparator(_ int) core.Comparator {
	return r
}

func (r *recordingComparatorConstructor) Compare(names []string, datasets []core.DataSet) {
	r.names = append(r.names, names)
	r.datasets = append(r.datasets, datasets)
}
