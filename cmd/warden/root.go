package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

// Exit codes. ExitSignals distinguishes "ran cleanly, one or more
// watches fired" from ExitRuntimeError so a CI caller can gate on
// governance signals without confusing them with a broken run.
const (
	ExitSuccess      = 0
	ExitSignals      = 1
	ExitUsageError   = 2
	ExitAuthError    = 3
	ExitRuntimeError = 4
)

var rootCmd = &cobra.Command{
	Use:   "warden",
	Short: "Deterministic code-change governance engine",
	Long:  "Warden checks code changes against declared watches and renders a report for every signal that fires.",
}

// exitCode is set by command handlers to control the process exit code.
var exitCode = ExitSuccess

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print warden version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "warden version %s\n", version)
	},
}

func run() int {
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		return ExitUsageError
	}

	return exitCode
}
