package grid

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTextWorld(t *testing.T) {
	cfg, err := ParseTextWorld([]string{
		"ooo#",
		"oxol",
		"omoL",
		"oaoG",
	})
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Width)
	assert.Equal(t, 4, cfg.Height)
	assert.Equal(t, []int{3}, cfg.Walls)
	assert.Equal(t, []int{5}, cfg.InitialStates)
	assert.Equal(t, []int{7}, cfg.Lemons)
	assert.Equal(t, []int{9}, cfg.Melons)
	assert.Equal(t, []int{13}, cfg.Apples)
	assert.Equal(t, []int{11}, cfg.LavaStates)
	assert.Equal(t, []int{15}, cfg.GoalStates)

	l, err := NewLayout(cfg)
	require.NoError(t, err)
	assert.True(t, l.IsWall(3))
	assert.True(t, l.IsGoal(15))
}

func TestParseTextWorldErrors(t *testing.T) {
	cases := []struct {
		name  string
		lines []string
	}{
		{"empty", nil},
		{"not a rectangle", []string{"oxG", "oo"}},
		{"unknown rune", []string{"x?G"}},
		{"no start", []string{"ooG"}},
		{"no goal", []string{"oxo"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseTextWorld(tc.lines)
			assert.ErrorIs(t, err, ErrConfiguration)
		})
	}
}

func TestLoadTextWorld(t *testing.T) {
	path := filepath.Join(t.TempDir(), "world.txt")
	content := "o o x\n\no # o\nG o o\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	l, err := LoadTextWorld(path)
	require.NoError(t, err)
	assert.Equal(t, 3, l.Width())
	assert.Equal(t, 3, l.Height())
	assert.Equal(t, []int{2}, l.InitialStates())
	assert.True(t, l.IsWall(4))
	assert.True(t, l.IsGoal(6))
}

func TestLoadTextWorldMissingFile(t *testing.T) {
	_, err := LoadTextWorld(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}
