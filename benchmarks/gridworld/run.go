package gridworld

import (
	"github.com/griduniverse/griduniverse-go/analysis"
	"github.com/griduniverse/griduniverse-go/benchmarks/common"
	"github.com/griduniverse/griduniverse-go/core"
	"github.com/griduniverse/griduniverse-go/grid"
	"github.com/griduniverse/griduniverse-go/policies"
)

// PrepareComparison builds the standard policy comparison on the layout the
// flags select: random exploration against epsilon-greedy Q-learning and
// softmax Q-learning, with return curves and state-coverage datasets.
func PrepareComparison(flags *common.Flags) (*core.ParallelComparison, error) {
	layout, err := FromFlags(flags)
	if err != nil {
		return nil, err
	}

	cmp := core.NewParallelComparison()

	envConstructor := &grid.EnvConstructor{
		Layout: layout,
		Seed:   flags.Seed,
	}

	cmp.AddAnalysis("Returns", &analysis.ReturnAnalyzerConstructor{}, analysis.NewChartComparatorConstructor(flags.SavePath))
	cmp.AddAnalysis("Coverage", &analysis.CoverageAnalyzerConstructor{}, analysis.NewFileComparatorConstructor(flags.SavePath))

	cmp.AddExperiment(&core.ParallelExperiment{
		Name:        "Random",
		Environment: envConstructor,
		Policy:      &policies.RandomPolicyConstructor{},
	})
	cmp.AddExperiment(&core.ParallelExperiment{
		Name:        "QLearning",
		Environment: envConstructor,
		Policy:      policies.NewQLearningPolicyConstructor(flags.Alpha, flags.Gamma, flags.Epsilon),
	})
	cmp.AddExperiment(&core.ParallelExperiment{
		Name:        "SoftMax",
		Environment: envConstructor,
		Policy:      policies.NewSoftMaxPolicyConstructor(flags.Alpha, flags.Gamma, flags.Temperature),
	})
	return cmp, nil
}
