package main

import (
	"fmt"

	"github.com/rpgo/payoff-calculator/internal/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newExampleCmd() *cobra.Command {
	var outputPath string
	cmd := &cobra.Command{
		Use:   "example",
		Short: "Write an example plan file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			plan := config.NewInputParser().CreateExamplePlan()
			if outputPath == "-" {
				b, err := yaml.Marshal(plan)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(b)
				return err
			}
			if err := config.SavePlan(plan, outputPath); err != nil {
				return fmt.Errorf("write example plan: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Example plan written to %s\n", outputPath)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outputPath, "output", "o", "example_plan.yaml", "file to write, '-' for stdout")
	return cmd
}
