package main

import (
	"github.com/spf13/cobra"
)

type rootOptions struct {
	verbose bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "payoff",
		Short: "Debt payoff planner: snowball vs avalanche",
		Long: `payoff simulates paying down a set of debts month by month with a fixed
extra budget, and compares the snowball (smallest balance first) and
avalanche (highest rate first) methods.`,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log simulation detail to stderr")

	cmd.AddCommand(
		newCompareCmd(opts),
		newSimulateCmd(opts),
		newValidateCmd(opts),
		newExampleCmd(),
		newFormatsCmd(),
	)
	return cmd
}
