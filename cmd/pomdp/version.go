package main

import (
	"fmt"

	"github.com/aretw0/pomdp"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of pomdp",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "pomdp version %s\n", pomdp.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
