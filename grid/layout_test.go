package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLayout(t *testing.T) {
	l, err := NewLayout(Config{
		Width:         4,
		Height:        4,
		InitialStates: []int{0, 4},
		GoalStates:    []int{15},
		LavaStates:    []int{10},
		Walls:         []int{5},
		Apples:        []int{3},
		Melons:        []int{12},
		Lemons:        []int{7},
	})
	require.NoError(t, err)

	assert.Equal(t, 4, l.Width())
	assert.Equal(t, 4, l.Height())
	assert.Equal(t, 16, l.NumStates())
	assert.Equal(t, []int{0, 4}, l.InitialStates())
	assert.True(t, l.IsWall(5))
	assert.True(t, l.IsGoal(15))
	assert.True(t, l.IsLava(10))
	assert.True(t, l.IsTerminal(15))
	assert.True(t, l.IsTerminal(10))
	assert.False(t, l.IsTerminal(0))

	apple, ok := l.FruitAt(3)
	require.True(t, ok)
	assert.Equal(t, Apple, apple.Kind)
	assert.Equal(t, float64(2), apple.Reward)

	melon, ok := l.FruitAt(12)
	require.True(t, ok)
	assert.Equal(t, Melon, melon.Kind)
	assert.Equal(t, float64(10), melon.Reward)

	lemon, ok := l.FruitAt(7)
	require.True(t, ok)
	assert.Equal(t, Lemon, lemon.Kind)
	assert.Equal(t, float64(-2), lemon.Reward)

	assert.Equal(t, []int{3, 7, 12}, l.FruitStates())
}

func TestNewLayoutRewardOverrides(t *testing.T) {
	rewards := DefaultRewards()
	rewards.Goal = 100
	rewards.Step = -1
	rewards.Apple = 5

	l, err := NewLayout(Config{
		Width:         3,
		Height:        3,
		InitialStates: []int{0},
		GoalStates:    []int{8},
		Apples:        []int{4},
	})
	require.NoError(t, err)
	assert.Equal(t, DefaultRewards(), l.Rewards())

	l, err = NewLayout(Config{
		Width:         3,
		Height:        3,
		InitialStates: []int{0},
		GoalStates:    []int{8},
		Apples:        []int{4},
		Rewards:       &rewards,
	})
	require.NoError(t, err)
	assert.Equal(t, float64(100), l.Rewards().Goal)
	apple, _ := l.FruitAt(4)
	assert.Equal(t, float64(5), apple.Reward)
}

func TestNewLayoutConfigurationErrors(t *testing.T) {
	base := func() Config {
		return Config{
			Width:         4,
			Height:        4,
			InitialStates: []int{0},
			GoalStates:    []int{15},
		}
	}

	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"negative height", func(c *Config) { c.Height = -2 }},
		{"no initial states", func(c *Config) { c.InitialStates = nil }},
		{"initial out of range", func(c *Config) { c.InitialStates = []int{16} }},
		{"goal out of range", func(c *Config) { c.GoalStates = []int{99} }},
		{"duplicate walls", func(c *Config) { c.Walls = []int{5, 5} }},
		{"duplicate initial", func(c *Config) { c.InitialStates = []int{0, 0} }},
		{"goal equals lava", func(c *Config) { c.LavaStates = []int{15} }},
		{"goal on wall", func(c *Config) { c.Walls = []int{15} }},
		{"initial on wall", func(c *Config) { c.Walls = []int{0} }},
		{"initial on goal", func(c *Config) { c.InitialStates = []int{15} }},
		{"lava and apple overlap", func(c *Config) { c.LavaStates = []int{5}; c.Apples = []int{5} }},
		{"goal and melon overlap", func(c *Config) { c.Melons = []int{15} }},
		{"fruit on fruit", func(c *Config) { c.Apples = []int{5}; c.Lemons = []int{5} }},
		{"fruit on wall", func(c *Config) { c.Walls = []int{5}; c.Melons = []int{5} }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := base()
			tc.mutate(&cfg)
			_, err := NewLayout(cfg)
			assert.ErrorIs(t, err, ErrConfiguration)
		})
	}
}
