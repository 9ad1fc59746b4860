// Package main provides the simplead command line interface.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "v0.1.0"

var rootCmd = &cobra.Command{
	Use:   "simplead",
	Short: "Forward-mode automatic differentiation for scalar expressions",
	Long: `simplead evaluates single-variable expressions and their first
derivatives via forward-mode automatic differentiation.`,
	SilenceUsage: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("simplead %s\n", version)
	},
}

func main() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(evalCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
