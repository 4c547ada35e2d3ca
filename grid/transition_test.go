package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLayout(t *testing.T) *Layout {
	t.Helper()
	l, err := NewLayout(Config{
		Width:         4,
		Height:        4,
		InitialStates: []int{0},
		GoalStates:    []int{15},
		Walls:         []int{5, 6},
	})
	require.NoError(t, err)
	return l
}

func TestNextStateStaysOnGrid(t *testing.T) {
	l := testLayout(t)
	trans := NewTransitions(l)

	for state := 0; state < l.NumStates(); state++ {
		if l.IsWall(state) {
			continue
		}
		for _, action := range Actions() {
			next, err := trans.NextState(state, action)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, next, 0)
			assert.Less(t, next, l.NumStates())
			assert.False(t, l.IsWall(next), "state %d action %s moved into wall %d", state, action, next)
		}
	}
}

func TestNextStateMoves(t *testing.T) {
	l := testLayout(t)
	trans := NewTransitions(l)

	cases := []struct {
		state  int
		action Action
		want   int
	}{
		{0, Right, 1},
		{0, Down, 4},
		{10, Up, 10},    // wall at 6
		{10, Left, 9},
		{15, Up, 11},
		{15, Left, 14},
	}
	for _, tc := range cases {
		next, err := trans.NextState(tc.state, tc.action)
		require.NoError(t, err)
		assert.Equal(t, tc.want, next, "state %d action %s", tc.state, tc.action)
	}
}

func TestNextStateBoundaryNoOp(t *testing.T) {
	l := testLayout(t)
	trans := NewTransitions(l)

	cases := []struct {
		state  int
		action Action
	}{
		{0, Up},
		{0, Left},
		{3, Right},
		{12, Down},
	}
	for _, tc := range cases {
		next, err := trans.NextState(tc.state, tc.action)
		require.NoError(t, err)
		assert.Equal(t, tc.state, next, "state %d action %s should be a no-op", tc.state, tc.action)
	}
}

func TestNextStateWallNoOp(t *testing.T) {
	l := testLayout(t)
	trans := NewTransitions(l)

	// 5 and 6 are walls
	next, err := trans.NextState(4, Right)
	require.NoError(t, err)
	assert.Equal(t, 4, next)

	next, err = trans.NextState(2, Down)
	require.NoError(t, err)
	assert.Equal(t, 2, next)
}

func TestNextStateFromWall(t *testing.T) {
	l := testLayout(t)
	trans := NewTransitions(l)

	_, err := trans.NextState(5, Right)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestNextStateBadInputs(t *testing.T) {
	l := testLayout(t)
	trans := NewTransitions(l)

	_, err := trans.NextState(-1, Up)
	assert.ErrorIs(t, err, ErrOutOfBounds)

	_, err = trans.NextState(16, Up)
	assert.ErrorIs(t, err, ErrOutOfBounds)

	_, err = trans.NextState(0, Action(7))
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestLookStepAheadAbsorbing(t *testing.T) {
	l := testLayout(t)
	trans := NewTransitions(l)

	// terminal states absorb
	next, err := trans.LookStepAhead(15, Up)
	require.NoError(t, err)
	assert.Equal(t, 15, next)

	// ordinary states behave like NextState
	next, err = trans.LookStepAhead(0, Right)
	require.NoError(t, err)
	assert.Equal(t, 1, next)
}
