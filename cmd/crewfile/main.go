// Crewfile is a crew roster manager backed by a single JSON file.
//
// It provides list, add and remove operations over a flat collection of
// named crew members with monotonically increasing identifiers and
// crash-safe writes. The roster file stays human-editable between runs.
//
// Usage:
//
//	crewfile [command] [flags]
//
// Running without arguments launches the interactive roster manager.
// See 'crewfile --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/crewfile/internal/logging"
	"github.com/muurk/crewfile/internal/version"
)

func main() {
	if err := logging.InitializeFromEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logging.Sync()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "crewfile",
	Short: "Crew Roster Manager",
	Long: `A small tool for managing a crew roster kept in a single JSON file.

Crew members are listed, added and removed by id. Identifiers increase
monotonically and are never reused, and every write replaces the roster
file atomically so it is never left half-written.

If no command is specified, the interactive roster manager will launch
automatically.`,
	Version: version.Version,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: run the interactive manager when no
		// subcommand provided
		return runManage(cmd, args)
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("crewfile %s (commit: %s)\n", version.Version, version.Commit)
	},
}
