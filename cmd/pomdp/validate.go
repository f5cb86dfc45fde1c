package main

import (
	"github.com/aretw0/pomdp/internal/cli"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <env> <policy>",
	Short: "Check the model and policy for consistency",
	Long: `Parses both documents and reports every transition or observation row that
is incomplete, holds a value outside [0,1], or does not sum to 1.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		tol, _ := cmd.Flags().GetFloat64("tolerance")
		return cli.Validate(args[0], args[1], tol, cli.NewPrinter(cmd.OutOrStdout()))
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().Float64("tolerance", 0, "Allowed deviation of a row sum from 1 (default 1e-6)")
}
