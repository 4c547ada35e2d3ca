package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/griduniverse/griduniverse-go/benchmarks/gridworld"
	"github.com/griduniverse/griduniverse-go/planning"
	"github.com/griduniverse/griduniverse-go/render"
)

const (
	planTheta         = 1e-6
	planMaxIterations = 10000
)

func PlanCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan [vi|pi]",
		Args:  cobra.ExactArgs(1),
		Short: "Run a planning algorithm and print the policy arrows",
		RunE: func(cmd *cobra.Command, args []string) error {
			layout, err := gridworld.FromFlags(flags)
			if err != nil {
				return err
			}

			var policy planning.Policy
			switch args[0] {
			case "vi":
				policy, _, err = planning.ValueIteration(layout, flags.Gamma, planTheta, planMaxIterations)
			case "pi":
				policy, _, err = planning.PolicyIteration(layout, flags.Gamma, planTheta, planMaxIterations)
			default:
				return fmt.Errorf("unknown planning algorithm %q, want vi or pi", args[0])
			}
			if err != nil {
				return err
			}

			return render.NewRenderer(layout).RenderPolicyArrows(os.Stdout, policy)
		},
	}

	return cmd
}
