package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/aretw0/pomdp"
	"github.com/aretw0/pomdp/internal/cli"
	"github.com/aretw0/pomdp/internal/logging"
	"github.com/aretw0/pomdp/pkg/domain"
	"github.com/aretw0/pomdp/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run [env] [policy]",
	Short: "Run the decision loop",
	Long: `Starts a session at the prior belief and prints every decision.
Observations are taken from --observations (or the run file) and then read
from stdin, one per line, until a --stop-on action is chosen or input ends.`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := runConfig(cmd, args)
		if err != nil {
			return err
		}
		return execRun(cmd, cfg)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("config", "c", "", "YAML run file")
	runCmd.Flags().String("prior", "", "Initial belief, e.g. \"0.65 0.35\" (default uniform)")
	runCmd.Flags().StringSlice("observations", nil, "Observations to feed back, in order")
	runCmd.Flags().StringSlice("stop-on", nil, "Actions that end the run")
	runCmd.Flags().Int("max-steps", 0, "Maximum number of decisions")
	runCmd.Flags().Bool("strict", false, "Refuse models whose T/O rows are not distributions")
	runCmd.Flags().Float64("tolerance", 0, "Row-sum tolerance for --strict")
	runCmd.Flags().Bool("metrics", false, "Print Prometheus metrics after the run")
	runCmd.Flags().Bool("no-stdin", false, "Do not read observations from stdin")
}

// runConfig merges the run file (if any) with positional args and flags; flags win.
func runConfig(cmd *cobra.Command, args []string) (cli.RunConfig, error) {
	var cfg cli.RunConfig
	flags := cmd.Flags()

	if path, _ := flags.GetString("config"); path != "" {
		loaded, err := cli.LoadRunConfig(path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	if len(args) > 0 {
		cfg.Env = args[0]
	}
	if len(args) > 1 {
		cfg.Policy = args[1]
	}
	if flags.Changed("prior") {
		s, _ := flags.GetString("prior")
		prior, err := cli.ParseFloats(s)
		if err != nil {
			return cfg, fmt.Errorf("--prior: %w", err)
		}
		cfg.Prior = prior
	}
	if flags.Changed("observations") {
		cfg.Observations, _ = flags.GetStringSlice("observations")
	}
	if flags.Changed("stop-on") {
		cfg.StopOn, _ = flags.GetStringSlice("stop-on")
	}
	if flags.Changed("max-steps") {
		cfg.MaxSteps, _ = flags.GetInt("max-steps")
	}
	if flags.Changed("strict") {
		cfg.Strict, _ = flags.GetBool("strict")
	}
	if flags.Changed("tolerance") {
		cfg.Tolerance, _ = flags.GetFloat64("tolerance")
	}
	if flags.Changed("metrics") {
		cfg.Metrics, _ = flags.GetBool("metrics")
	}
	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.LogLevel = level
	}
	return cfg, cfg.Check()
}

func execRun(cmd *cobra.Command, cfg cli.RunConfig) error {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger := logging.New(level)

	opts := []pomdp.Option{pomdp.WithLogger(logger)}
	if cfg.Strict {
		opts = append(opts, pomdp.WithStrict(cfg.Tolerance))
	}
	var reg *prometheus.Registry
	if cfg.Metrics {
		reg = prometheus.NewRegistry()
		opts = append(opts, pomdp.WithMetrics(reg))
	}
	if level <= slog.LevelDebug {
		opts = append(opts, pomdp.WithLifecycleHooks(observability.LogHooks(logger)))
	}

	eng, err := pomdp.New(cfg.Env, cfg.Policy, opts...)
	if err != nil {
		return err
	}

	prior := cfg.Prior
	if len(prior) == 0 {
		prior = domain.UniformBelief(eng.Model().States.Len())
	}
	sess, err := eng.Start(prior)
	if err != nil {
		return fmt.Errorf("prior: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	printer := cli.NewPrinter(out)
	in := cmd.InOrStdin()
	if noStdin, _ := cmd.Flags().GetBool("no-stdin"); noStdin {
		in = nil
	}

	res, err := cli.Run(ctx, sess, cfg, in, printer)
	if err != nil {
		return err
	}
	logger.Info("run finished", "steps", len(res.Actions), "last_action", lastOf(res.Actions))

	if reg != nil {
		fmt.Fprintln(out, strings.Repeat("-", 40))
		return cli.DumpMetrics(out, reg)
	}
	return nil
}

func lastOf(s []string) string {
	if len(s) == 0 {
		return ""
	}
	return s[len(s)-1]
}
