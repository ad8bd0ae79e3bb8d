// Package cmd contains the scdb-inspect CLI.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "scdb-inspect",
	Short: "Replay a recorded block sequence through SCDB and print its state",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
