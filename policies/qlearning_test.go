package policies

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/griduniverse/griduniverse-go/core"
	"github.com/griduniverse/griduniverse-go/grid"
)

func trainOnOpenRoom(t *testing.T, policy core.Policy, episodes, horizon int) {
	t.Helper()
	l, err := grid.NewLayout(grid.Config{
		Width:         4,
		Height:        4,
		InitialStates: []int{0},
		GoalStates:    []int{15},
	})
	require.NoError(t, err)

	constructor := &grid.EnvConstructor{Layout: l, Seed: 13}
	env := constructor.NewEnvironment(0)

	for ep := 0; ep < episodes; ep++ {
		state, err := env.Reset()
		require.NoError(t, err)
		for step := 0; step < horizon; step++ {
			action := policy.PickAction(nil, state, state.Actions())
			outcome, err := env.Step(action, nil)
			require.NoError(t, err)
			policy.UpdateStep(nil, state, action, outcome)
			if outcome.Done {
				break
			}
			state = outcome.State
		}
	}
}

func TestQLearningFindsGoal(t *testing.T) {
	p := NewQLearningPolicy(0.5, 0.9, 0.2)
	trainOnOpenRoom(t, p, 500, 100)

	best, value := p.QTable().Max("0", 0)
	assert.Greater(t, value, float64(0))
	assert.Contains(t, []string{"RIGHT", "DOWN"}, best)

	// next to the goal the learned value approaches the goal reward
	_, nearGoal := p.QTable().Max("14", 0)
	assert.InDelta(t, 10, nearGoal, 1)
}

func TestSoftMaxLearnsPositiveValues(t *testing.T) {
	p := NewSoftMaxPolicy(0.5, 0.9, 1.0)
	trainOnOpenRoom(t, p, 500, 100)

	values, ok := p.QTable["14"]
	require.True(t, ok)
	max := float64(0)
	for _, v := range values {
		if v > max {
			max = v
		}
	}
	assert.InDelta(t, 10, max, 1)
}

func TestQLearningReset(t *testing.T) {
	p := NewQLearningPolicy(0.5, 0.9, 0.2)
	trainOnOpenRoom(t, p, 20, 50)
	require.Greater(t, p.QTable().Size(), 0)

	p.Reset()
	assert.Equal(t, 0, p.QTable().Size())
}
