package cmd

import "github.com/spf13/cobra"

func RootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "griduniverse",
		Short: "Benchmark tabular RL and planning algorithms on grid worlds",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			UpdateFlags()
			flags.Record()
		},
	}
	AddFlags(cmd)

	cmd.AddCommand(
		CompareCommand(),
		LearnCommand(),
		PlanCommand(),
		PlayCommand(),
	)

	return cmd
}
