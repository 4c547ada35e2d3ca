package gridworld

import (
	"math/rand"
	"time"

	"github.com/griduniverse/griduniverse-go/benchmarks/common"
	"github.com/griduniverse/griduniverse-go/grid"
)

// OpenRoom is an empty width x height grid: start in the top-left corner,
// goal in the bottom-right one.
func OpenRoom(width, height int) (*grid.Layout, error) {
	return grid.NewLayout(grid.Config{
		Width:         width,
		Height:        height,
		InitialStates: []int{0},
		GoalStates:    []int{width*height - 1},
	})
}

// Cliff is the classic 12x4 cliff walk: the bottom edge between start and
// goal is lava, every step costs -1 and falling off costs -100.
func Cliff() (*grid.Layout, error) {
	const width, height = 12, 4
	bottom := (height - 1) * width
	lava := make([]int, 0, width-2)
	for s := bottom + 1; s < bottom+width-1; s++ {
		lava = append(lava, s)
	}
	rewards := grid.DefaultRewards()
	rewards.Goal = 0
	rewards.Lava = -100
	rewards.Step = -1
	return grid.NewLayout(grid.Config{
		Width:         width,
		Height:        height,
		InitialStates: []int{bottom},
		GoalStates:    []int{bottom + width - 1},
		LavaStates:    lava,
		Rewards:       &rewards,
	})
}

// Orchard is a 6x6 grid with a walled-off center and fruit of every kind
// scattered around it.
func Orchard() (*grid.Layout, error) {
	return grid.NewLayout(grid.Config{
		Width:         6,
		Height:        6,
		InitialStates: []int{0},
		GoalStates:    []int{35},
		Walls:         []int{14, 15, 20, 21},
		Apples:        []int{9, 27},
		Melons:        []int{17},
		Lemons:        []int{4, 22},
	})
}

// FromFlags resolves the layout the flags ask for: a text-world file wins,
// then a random maze, then an open room of the given shape.
func FromFlags(flags *common.Flags) (*grid.Layout, error) {
	if flags.WorldFile != "" {
		return grid.LoadTextWorld(flags.WorldFile)
	}
	if flags.RandomMaze {
		seed := flags.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		return grid.RandomMaze(flags.Width, flags.Height, rand.NewSource(seed))
	}
	return OpenRoom(flags.Width, flags.Height)
}
