package cmd

import (
	"fmt"
	"os"
	"path"

	"github.com/spf13/cobra"

	"github.com/griduniverse/griduniverse-go/benchmarks/gridworld"
	"github.com/griduniverse/griduniverse-go/policies"
)

var qtablePath string

func LearnCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "learn",
		Short: "Train tabular Q-learning on a grid layout and record the Q table",
		RunE: func(cmd *cobra.Command, args []string) error {
			layout, err := gridworld.FromFlags(flags)
			if err != nil {
				return err
			}

			base := qtablePath
			if base == "" {
				base = path.Join(flags.SavePath, "qtable")
			}

			policy := policies.NewQLearningPolicy(flags.Alpha, flags.Gamma, flags.Epsilon)
			if _, err := os.Stat(base + ".jsonl"); err == nil {
				if err := policy.QTable().Read(base + ".jsonl"); err != nil {
					return err
				}
				fmt.Printf("Resuming from %s.jsonl (%d states)\n", base, policy.QTable().Size())
			}

			if err := gridworld.TrainQLearning(layout, flags, policy); err != nil {
				return err
			}

			policy.QTable().Record(base)
			fmt.Printf("Recorded %d states to %s.jsonl\n", policy.QTable().Size(), base)
			return nil
		},
	}
	cmd.Flags().StringVar(&qtablePath, "qtable-path", "", "Q table base path, .jsonl is appended (default <save-path>/qtable)")

	return cmd
}
