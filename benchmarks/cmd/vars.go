package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/griduniverse/griduniverse-go/benchmarks/common"
)

var (
	flags      *common.Flags = common.DefaultFlags()
	savePath   string
	width      int
	height     int
	worldFile  string
	randomMaze bool
	seed       int64

	numRuns                int
	episodes               int
	horizon                int
	maxConsecutiveErrors   int
	maxConsecutiveTimeouts int
	episodeTimeout         int
	parallelism            int

	alpha       float64
	gamma       float64
	epsilon     float64
	temperature float64
)

func AddFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&savePath, "save-path", flags.SavePath, "Path to save results")
	cmd.PersistentFlags().IntVar(&width, "width", flags.Width, "Grid width")
	cmd.PersistentFlags().IntVar(&height, "height", flags.Height, "Grid height")
	cmd.PersistentFlags().StringVar(&worldFile, "world-file", flags.WorldFile, "Path to a text-world file")
	cmd.PersistentFlags().BoolVar(&randomMaze, "random-maze", flags.RandomMaze, "Generate a random maze layout")
	cmd.PersistentFlags().Int64Var(&seed, "seed", flags.Seed, "Random seed, 0 for time-based")

	cmd.PersistentFlags().IntVar(&numRuns, "num-runs", flags.NumRuns, "Number of runs")
	cmd.PersistentFlags().IntVar(&episodes, "episodes", flags.Episodes, "Number of episodes")
	cmd.PersistentFlags().IntVar(&horizon, "horizon", flags.Horizon, "Horizon")
	cmd.PersistentFlags().IntVar(&maxConsecutiveErrors, "max-consecutive-errors", flags.MaxConsecutiveErrors, "Maximum number of consecutive errors")
	cmd.PersistentFlags().IntVar(&maxConsecutiveTimeouts, "max-consecutive-timeouts", flags.MaxConsecutiveTimeouts, "Maximum number of consecutive timeouts")
	cmd.PersistentFlags().IntVar(&episodeTimeout, "episode-timeout", int(flags.EpisodeTimeout.Seconds()), "Episode timeout in seconds")
	cmd.PersistentFlags().IntVar(&parallelism, "parallelism", flags.Parallelism, "Number of parallel runs")

	cmd.PersistentFlags().Float64Var(&alpha, "alpha", flags.Alpha, "Learning rate")
	cmd.PersistentFlags().Float64Var(&gamma, "gamma", flags.Gamma, "Discount factor")
	cmd.PersistentFlags().Float64Var(&epsilon, "epsilon", flags.Epsilon, "Exploration rate")
	cmd.PersistentFlags().Float64Var(&temperature, "temperature", flags.Temperature, "Softmax temperature")
}

func UpdateFlags() {
	flags.SavePath = savePath
	flags.Width = width
	flags.Height = height
	flags.WorldFile = worldFile
	flags.RandomMaze = randomMaze
	flags.Seed = seed

	flags.NumRuns = numRuns
	flags.Episodes = episodes
	flags.Horizon = horizon
	flags.MaxConsecutiveErrors = maxConsecutiveErrors
	flags.MaxConsecutiveTimeouts = maxConsecutiveTimeouts
	flags.EpisodeTimeout = time.Duration(episodeTimeout) * time.Second
	flags.Parallelism = parallelism

	flags.Alpha = alpha
	flags.Gamma = gamma
	flags.Epsilon = epsilon
	flags.Temperature = temperature
}
