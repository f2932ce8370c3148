package main

import (
	"fmt"

	"github.com/rpgo/payoff-calculator/internal/config"
	"github.com/rpgo/payoff-calculator/internal/output"
	"github.com/spf13/cobra"
)

func newValidateCmd(root *rootOptions) *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a plan file without simulating it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := config.NewInputParser()
			plan, err := parser.LoadFromFile(configPath)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Plan is valid: %d debts, total balance %s, minimums %s, extra %s\n",
				len(plan.Debts),
				output.FormatCurrency(plan.TotalBalance()),
				output.FormatCurrency(plan.TotalMinimums()),
				output.FormatCurrency(plan.ExtraPayment))
			logger := newCLILogger(cmd.ErrOrStderr(), root.verbose)
			for _, w := range parser.Warnings(plan) {
				logger.Warnf("%s", w)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "plan file (YAML or JSON)")
	_ = cmd.MarkFlagRequired("config")
	return cmd
}
