package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rewardLayout(t *testing.T, rewards *RewardConfig) *Layout {
	t.Helper()
	l, err := NewLayout(Config{
		Width:         4,
		Height:        4,
		InitialStates: []int{0},
		GoalStates:    []int{15},
		LavaStates:    []int{10},
		Apples:        []int{3},
		Rewards:       rewards,
	})
	require.NoError(t, err)
	return l
}

func TestRewardForPriorities(t *testing.T) {
	r := NewRewards(rewardLayout(t, nil))
	none := map[int]struct{}{}

	reward, consumed := r.RewardFor(15, none)
	assert.Equal(t, float64(10), reward)
	assert.Equal(t, NoFruit, consumed)

	reward, consumed = r.RewardFor(10, none)
	assert.Equal(t, float64(-10), reward)
	assert.Equal(t, NoFruit, consumed)

	reward, consumed = r.RewardFor(3, none)
	assert.Equal(t, float64(2), reward)
	assert.Equal(t, 3, consumed)

	reward, consumed = r.RewardFor(1, none)
	assert.Equal(t, float64(0), reward)
	assert.Equal(t, NoFruit, consumed)
}

func TestRewardForConsumedFruit(t *testing.T) {
	r := NewRewards(rewardLayout(t, nil))

	reward, consumed := r.RewardFor(3, map[int]struct{}{3: {}})
	assert.Equal(t, float64(0), reward)
	assert.Equal(t, NoFruit, consumed)
}

func TestRewardForLivingCost(t *testing.T) {
	rewards := DefaultRewards()
	rewards.Step = -1
	r := NewRewards(rewardLayout(t, &rewards))
	none := map[int]struct{}{}

	// ordinary move pays the living cost
	reward, _ := r.RewardFor(1, none)
	assert.Equal(t, float64(-1), reward)

	// fruit reward stacks on the living cost
	reward, consumed := r.RewardFor(3, none)
	assert.Equal(t, float64(1), reward)
	assert.Equal(t, 3, consumed)

	// terminal rewards are not offset
	reward, _ = r.RewardFor(15, none)
	assert.Equal(t, float64(10), reward)
}
