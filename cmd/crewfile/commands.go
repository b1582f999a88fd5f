package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/muurk/crewfile/internal/config"
	"github.com/muurk/crewfile/internal/logging"
	"github.com/muurk/crewfile/internal/store"
	"github.com/muurk/crewfile/internal/tui"
)

// Command flags
var (
	storePath    string
	outputFormat string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&storePath, "file", "", "Roster file path (overrides config)")
	rootCmd.PersistentFlags().StringVar(&outputFormat, "format", "", "Output format (table, plain, json)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(pathCmd)
}

// resolveStorePath returns the roster file location: the --file flag if
// given, otherwise the configured (or default) path.
func resolveStorePath() (string, error) {
	if storePath != "" {
		return storePath, nil
	}

	cfg, err := config.Load()
	if err != nil {
		return "", fmt.Errorf("failed to load config: %w", err)
	}
	return cfg.StorePath()
}

// openStore resolves the roster path and opens the store, creating the
// default directory first when the default location is used.
func openStore() (*store.Store, error) {
	path, err := resolveStorePath()
	if err != nil {
		return nil, err
	}

	// The store requires the parent directory to exist. For the default
	// location under the config dir that is our directory to create; an
	// explicitly given --file path is taken as-is.
	if storePath == "" {
		if err := config.EnsureConfigDir(); err != nil {
			return nil, err
		}
	}

	s, err := store.New(path)
	if err != nil {
		logging.LogStoreError("init", err)
		return nil, err
	}
	return s, nil
}

// resolveFormat picks the output format: flag, then config, then
// "table". Styled table output degrades to plain when stdout is not a
// terminal (pipes, redirects).
func resolveFormat() string {
	format := outputFormat
	if format == "" {
		if cfg, err := config.Load(); err == nil {
			format = cfg.Format()
		} else {
			format = "table"
		}
	}

	if format == "table" && !term.IsTerminal(int(os.Stdout.Fd())) {
		return "plain"
	}
	return format
}

// runManage launches the interactive roster manager (default command)
func runManage(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	return tui.Run(s)
}

// listCmd prints the roster
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all crew members",
	Long: `List all crew members in the roster, sorted by id ascending.

Output is a table on a terminal and tab-separated plain text when piped.
Use --format json for machine-readable output.`,
	Example: `  # Human-readable listing
  crewfile list

  # JSON output for scripting
  crewfile list --format json

  # Operate on a specific roster file
  crewfile list --file ./team.json`,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}

	users, err := s.List()
	if err != nil {
		logging.LogStoreError("list", err)
		return err
	}

	switch resolveFormat() {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(users)

	case "plain":
		for _, u := range users {
			fmt.Printf("%d\t%s\n", u.ID, u.Name)
		}
		return nil

	default:
		if len(users) == 0 {
			fmt.Println("No crew members yet. Use 'crewfile add <name>' to add one.")
			return nil
		}
		fmt.Printf("%-6s %s\n", "ID", "NAME")
		for _, u := range users {
			fmt.Printf("%-6d %s\n", u.ID, u.Name)
		}
		fmt.Printf("\n%d crew member(s)\n", len(users))
		return nil
	}
}

// addCmd creates a new crew member
var addCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a crew member",
	Long: `Add a crew member to the roster.

The name is trimmed of surrounding whitespace and must not be empty.
The new entry receives the next unused id (one greater than the largest
existing id) and is persisted immediately.`,
	Example: `  crewfile add Alice
  crewfile add "Bob the Builder"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	// Validate here: the store accepts any non-empty string without
	// re-trimming, so rejecting blank input is this layer's job.
	name := strings.TrimSpace(strings.Join(args, " "))
	if name == "" {
		return fmt.Errorf("name must not be empty")
	}

	s, err := openStore()
	if err != nil {
		return err
	}

	user, err := s.Create(name)
	if err != nil {
		logging.LogStoreError("create", err)
		return err
	}

	fmt.Printf("Added #%d %s\n", user.ID, user.Name)
	return nil
}

// removeCmd deletes a crew member by id
var removeCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a crew member by id",
	Long: `Remove the crew member with the given id from the roster.

Removing an id that does not exist is reported but is not an error; the
roster file is left untouched in that case.`,
	Example: `  crewfile remove 3`,
	Args: cobra.ExactArgs(1),
	RunE: runRemove,
}

func runRemove(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid id %q: expected an integer", args[0])
	}

	s, err := openStore()
	if err != nil {
		return err
	}

	removed, err := s.Delete(id)
	if err != nil {
		logging.LogStoreError("delete", err)
		return err
	}

	if removed {
		fmt.Printf("Removed #%d\n", id)
	} else {
		fmt.Printf("No crew member with id %d\n", id)
	}
	return nil
}

// pathCmd prints the resolved roster file location
var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the roster file location",
	Long: `Print the resolved roster file path without creating or opening it.

Resolution order: --file flag, then storage.path from the config file,
then the default location next to the config file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveStorePath()
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	},
}
