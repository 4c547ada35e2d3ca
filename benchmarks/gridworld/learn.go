package gridworld

import (
	"math/rand"
	"time"

	"github.com/griduniverse/griduniverse-go/benchmarks/common"
	"github.com/griduniverse/griduniverse-go/grid"
	"github.com/griduniverse/griduniverse-go/policies"
)

// TrainQLearning runs the flags' worth of Q-learning episodes on the layout,
// updating the policy in place. The policy may carry a pre-loaded Q table to
// resume from.
func TrainQLearning(layout *grid.Layout, flags *common.Flags, policy *policies.QLearningPolicy) error {
	seed := flags.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	env := grid.NewEnvWithSource(layout, rand.NewSource(seed))

	for episode := 0; episode < flags.Episodes; episode++ {
		state, err := env.Reset()
		if err != nil {
			return err
		}
		for step := 0; step < flags.Horizon; step++ {
			action := policy.PickAction(nil, state, state.Actions())
			outcome, err := env.Step(action, nil)
			if err != nil {
				return err
			}
			policy.UpdateStep(nil, state, action, outcome)
			if outcome.Done {
				break
			}
			state = outcome.State
		}
	}
	return nil
}
