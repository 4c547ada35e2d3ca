package planning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/griduniverse/griduniverse-go/grid"
)

func openRoom(t *testing.T) *grid.Layout {
	t.Helper()
	l, err := grid.NewLayout(grid.Config{
		Width:         4,
		Height:        4,
		InitialStates: []int{0},
		GoalStates:    []int{15},
	})
	require.NoError(t, err)
	return l
}

func TestUniformRandomPolicy(t *testing.T) {
	l, err := grid.NewLayout(grid.Config{
		Width:         3,
		Height:        3,
		InitialStates: []int{0},
		GoalStates:    []int{8},
		Walls:         []int{4},
	})
	require.NoError(t, err)

	p := UniformRandomPolicy(l)
	require.Len(t, p, 9)
	for a := 0; a < grid.NumActions; a++ {
		assert.Equal(t, 0.25, p[0][a])
		assert.Equal(t, float64(0), p[4][a]) // wall
		assert.Equal(t, float64(0), p[8][a]) // terminal
	}
}

func TestValueIterationOpenRoom(t *testing.T) {
	l := openRoom(t)
	policy, values, err := ValueIteration(l, 0.9, 1e-6, 1000)
	require.NoError(t, err)

	// values grow towards the goal
	assert.Greater(t, values[14], values[0])
	assert.Greater(t, values[11], values[0])
	assert.Equal(t, float64(0), values[15])

	// greedy actions from the corner point right or down, never away
	assert.Equal(t, float64(0), policy[0][grid.Up])
	assert.Equal(t, float64(0), policy[0][grid.Left])
	assert.InDelta(t, 1.0, policy[0][grid.Right]+policy[0][grid.Down], 1e-9)

	// next to the goal the single best move is straight into it
	assert.InDelta(t, 1.0, policy[14][grid.Right], 1e-9)
	assert.InDelta(t, 1.0, policy[11][grid.Down], 1e-9)
}

func TestPolicyIterationMatchesValueIteration(t *testing.T) {
	l := openRoom(t)
	viPolicy, viValues, err := ValueIteration(l, 0.9, 1e-6, 1000)
	require.NoError(t, err)
	piPolicy, piValues, err := PolicyIteration(l, 0.9, 1e-6, 1000)
	require.NoError(t, err)

	for s := range viPolicy {
		for a := range viPolicy[s] {
			assert.InDelta(t, viPolicy[s][a], piPolicy[s][a], 1e-6, "state %d action %d", s, a)
		}
		assert.InDelta(t, viValues[s], piValues[s], 1e-3, "state %d", s)
	}
}

func TestValueIterationAvoidsLava(t *testing.T) {
	// lava pit directly right of the start
	l, err := grid.NewLayout(grid.Config{
		Width:         3,
		Height:        1,
		InitialStates: []int{0},
		GoalStates:    []int{2},
		LavaStates:    []int{1},
	})
	require.NoError(t, err)

	policy, values, err := ValueIteration(l, 0.9, 1e-6, 1000)
	require.NoError(t, err)

	// the only way forward runs through lava; better to bounce off the
	// walls forever than to step into it
	assert.Equal(t, float64(0), values[0])
	assert.Equal(t, float64(0), policy[0][grid.Right])

	// with a safe detour the policy takes it
	l2, err := grid.NewLayout(grid.Config{
		Width:         3,
		Height:        2,
		InitialStates: []int{0},
		GoalStates:    []int{2},
		LavaStates:    []int{1},
	})
	require.NoError(t, err)
	policy2, _, err := ValueIteration(l2, 0.9, 1e-6, 1000)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, policy2[0][grid.Down], 1e-9)
}

func TestEvaluatePolicyShapeErrors(t *testing.T) {
	l := openRoom(t)

	_, err := EvaluatePolicyStep(l, make(Policy, 3), make([]float64, 16), 0.9)
	assert.ErrorIs(t, err, grid.ErrConfiguration)

	bad := NewPolicy(l)
	bad[5] = []float64{1}
	_, err = EvaluatePolicyStep(l, bad, make([]float64, 16), 0.9)
	assert.ErrorIs(t, err, grid.ErrConfiguration)

	_, err = GreedyPolicy(l, make([]float64, 3), 0.9)
	assert.ErrorIs(t, err, grid.ErrConfiguration)
}

func TestEvaluatePolicyConverges(t *testing.T) {
	l := openRoom(t)
	p := UniformRandomPolicy(l)
	v, err := EvaluatePolicy(l, p, 0.9, 1e-8, 10000)
	require.NoError(t, err)

	// a random walk still finds the goal reward eventually
	for s := 0; s < 15; s++ {
		assert.Greater(t, v[s], float64(0), "state %d", s)
	}
	assert.Equal(t, float64(0), v[15])
}
