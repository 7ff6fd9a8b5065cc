package main

import (
	"fmt"
	"io"
	"os"

	"covest/internal/cli"
	"covest/internal/cli/commands"
	"covest/internal/config"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit code
func run(args []string, stdout, stderr io.Writer) int {
	// Create root command
	rootCmd := &cobra.Command{
		Use:     "covest",
		Short:   "Static test-coverage estimator",
		Long:    `Estimates test coverage of a source tree without running anything: a curated source-to-test mapping is checked against the files on disk and test cases are counted by their declaration marker.`,
		Version: version,
	}
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	// Settings come from flags, COVEST_* variables and .env, in that order
	v := config.NewViper()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(v, stdout, stderr)

	// Register all commands
	if err := cmds.Register(rootCmd, &flags); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	// Execute root command
	code := 0
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		code = 1
	}
	if err := cmds.Close(); err != nil {
		fmt.Fprintf(stderr, "Error: close log file: %v\n", err)
		code = 1
	}
	return code
}
