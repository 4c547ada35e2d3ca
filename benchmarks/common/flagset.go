package common

import (
	"path"
	"time"

	"github.com/griduniverse/griduniverse-go/util"
)

type Flags struct {
	GridFlags
	SavePath string
	RunFlags
	LearnFlags
	Parallelism int
}

type GridFlags struct {
	Width      int
	Height     int
	WorldFile  string
	RandomMaze bool
	Seed       int64
}

type RunFlags struct {
	NumRuns                int
	Episodes               int
	Horizon                int
	MaxConsecutiveErrors   int
	MaxConsecutiveTimeouts int
	EpisodeTimeout         time.Duration
}

type LearnFlags struct {
	Alpha       float64
	Gamma       float64
	Epsilon     float64
	Temperature float64
}

func DefaultFlags() *Flags {
	return &Flags{
		GridFlags: GridFlags{
			Width:      4,
			Height:     4,
			WorldFile:  "",
			RandomMaze: false,
			Seed:       0,
		},
		SavePath: "results",
		RunFlags: RunFlags{
			NumRuns:                1,
			Episodes:               1000,
			Horizon:                100,
			MaxConsecutiveErrors:   20,
			MaxConsecutiveTimeouts: 20,
			EpisodeTimeout:         10 * time.Second,
		},
		LearnFlags: LearnFlags{
			Alpha:       0.2,
			Gamma:       0.95,
			Epsilon:     0.1,
			Temperature: 1,
		},
		Parallelism: 10,
	}
}

func (f *Flags) Record() {
	util.SaveJson(path.Join(f.SavePath, "config.json"), f)
}
