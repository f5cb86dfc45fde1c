package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pomdp",
	Short: "pomdp tracks beliefs and picks actions for a POMDP",
	Long: `pomdp loads an environment in the POMDP file format together with an
alpha-vector policy, then walks the decision loop: choose the best action
for the current belief, feed back an observation, update the belief.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
}
