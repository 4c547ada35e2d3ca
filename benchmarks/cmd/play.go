package cmd

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/griduniverse/griduniverse-go/benchmarks/gridworld"
	"github.com/griduniverse/griduniverse-go/grid"
	"github.com/griduniverse/griduniverse-go/render"
	"github.com/griduniverse/griduniverse-go/util"
)

func PlayCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Watch a random-walk episode rendered live in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			layout, err := gridworld.FromFlags(flags)
			if err != nil {
				return err
			}

			seed := flags.Seed
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			episode := grid.NewEpisodeWithSource(layout, rand.NewSource(seed))
			rng := rand.New(rand.NewSource(seed + 1))

			renderer := render.NewRenderer(layout)
			renderer.Color = true

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			printer := util.NewTerminalPrinter(50 * time.Millisecond)
			out := printer.NewOutput()
			printer.Start(ctx)
			defer printer.Stop()

			state := episode.Reset()
			total := float64(0)
			for step := 0; step < flags.Horizon; step++ {
				action := grid.Actions()[rng.Intn(grid.NumActions)]
				next, reward, done, _, err := episode.Step(action)
				if err != nil {
					return err
				}
				total += reward
				out.Set(fmt.Sprintf(
					"%sStep %d: %s %d -> %d, reward %.1f, return %.1f",
					renderer.Sprint(next, episode.ConsumedFruit()),
					step, action, state, next, reward, total,
				))
				state = next
				if done {
					break
				}
				time.Sleep(200 * time.Millisecond)
			}
			// let the printer flush the final frame
			time.Sleep(100 * time.Millisecond)
			return nil
		},
	}

	return cmd
}
