package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/rpgo/payoff-calculator/internal/cache"
	"github.com/rpgo/payoff-calculator/internal/calculation"
	"github.com/rpgo/payoff-calculator/internal/config"
	"github.com/rpgo/payoff-calculator/internal/domain"
	"github.com/rpgo/payoff-calculator/internal/output"
	"github.com/spf13/cobra"
)

type runOptions struct {
	*rootOptions
	configPath string
	format     string
	outputPath string
	redisAddr  string
	cascade    bool
	policy     string
	maxMonths  int
}

func (o *runOptions) bindFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.configPath, "config", "c", "", "plan file (YAML or JSON)")
	cmd.Flags().StringVarP(&o.format, "format", "f", "console", "report format (see 'payoff formats')")
	cmd.Flags().StringVarP(&o.outputPath, "output", "o", "", "report file, '-' for stdout")
	cmd.Flags().StringVar(&o.redisAddr, "redis", "", "cache results in the Redis server at this address")
	cmd.Flags().BoolVar(&o.cascade, "cascade", false, "roll unused extra to the next debt in the same month")
	cmd.Flags().IntVar(&o.maxMonths, "max-months", 0, "lower the simulation ceiling (default 600)")
	_ = cmd.MarkFlagRequired("config")
}

func newCompareCmd(root *rootOptions) *cobra.Command {
	opts := &runOptions{rootOptions: root, policy: domain.PolicyBoth}
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Simulate both methods and compare them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlan(cmd, opts)
		},
	}
	opts.bindFlags(cmd)
	return cmd
}

func newSimulateCmd(root *rootOptions) *cobra.Command {
	opts := &runOptions{rootOptions: root}
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Simulate a single payoff method",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := calculation.ParsePolicy(opts.policy)
			if err != nil {
				return err
			}
			opts.policy = string(p)
			return runPlan(cmd, opts)
		},
	}
	opts.bindFlags(cmd)
	cmd.Flags().StringVarP(&opts.policy, "policy", "p", "", "snowball or avalanche")
	_ = cmd.MarkFlagRequired("policy")
	return cmd
}

func runPlan(cmd *cobra.Command, opts *runOptions) error {
	logger := newCLILogger(cmd.ErrOrStderr(), opts.verbose)
	parser := config.NewInputParser()
	plan, err := parser.LoadFromFile(opts.configPath)
	if err != nil {
		return err
	}
	plan.Policy = opts.policy
	if opts.cascade {
		plan.CascadeExtra = true
	}
	if opts.maxMonths > 0 {
		plan.MaxMonths = opts.maxMonths
	}
	if err := parser.ValidateConfiguration(plan); err != nil {
		return err
	}
	for _, w := range parser.Warnings(plan) {
		logger.Warnf("%s", w)
	}

	format := output.NormalizeFormatName(opts.format)
	f := output.GetFormatterByName(format)
	if f == nil && format != "all" {
		return fmt.Errorf("%w: %q. Try one of: %s", output.ErrUnsupportedFormat, opts.format, strings.Join(output.AvailableFormatterNames(), ", "))
	}

	sim := calculation.NewSimulator()
	sim.Debug = opts.verbose
	sim.SetLogger(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	results, err := compute(ctx, sim, plan, opts.redisAddr, logger)
	if err != nil {
		return err
	}

	if f != nil && (opts.outputPath == "-" || (opts.outputPath == "" && strings.HasPrefix(f.Name(), "console"))) {
		if !output.IsTextual(f) {
			return fmt.Errorf("%s output is binary; pass --output with a file name", f.Name())
		}
		data, err := f.Format(results)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}

	path, err := output.GenerateReport(results, format, opts.outputPath)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", path)
	return nil
}

func compute(ctx context.Context, sim *calculation.Simulator, plan *domain.Plan, redisAddr string, logger calculation.Logger) (*domain.PlanComparison, error) {
	run := func(ctx context.Context) (*domain.PlanComparison, error) {
		return sim.RunPlan(ctx, plan)
	}
	if redisAddr == "" {
		return run(ctx)
	}

	rc := cache.NewRedisCache(redisAddr)
	defer rc.Close()
	key, err := cache.Fingerprint(plan)
	if err != nil {
		return nil, err
	}
	results, hit, err := cache.LoadOrCompute(ctx, rc, key, run, logger)
	if err != nil {
		return nil, err
	}
	if hit {
		logger.Infof("loaded results from cache (%s)", key)
	}
	return results, nil
}
