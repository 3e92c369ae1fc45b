/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// root.go defines the root command and CLI execution entry point.
//
// Separated from init_extensions.go to isolate cobra setup from extension
// initialisation logic.
//
// Design: PersistentPreRunE handles library discovery lazily - only
// commands that need a library trigger extension init. This enables
// commands like guide and config to work from anywhere. The noRootCommands
// map controls which commands skip initialisation.

package cmd

import (
	"fmt"
	"os"
	"slices"

	"github.com/jpl-au/promptlint/internal/log"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "promptlint",
	Short: "Sandboxed validation for AI prompt libraries",
	Long: `Validate, audit, and browse a prompt library without ever reading
outside it. Every filesystem access goes through a path sandbox that
refuses traversal, absolute paths, and anything off the allow-list.`,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if output != "" && !slices.Contains(validOutputFormats, output) {
			return fmt.Errorf("invalid output format: %s (valid: %v)", output, validOutputFormats)
		}

		// Discover the library for commands that need one
		cmdName := topLevelCmdName(cmd)
		if !noRootCommands[cmdName] {
			if err := initExtensions(); err != nil {
				cmd.SilenceUsage = true
				if JSON() {
					_ = PrintJSON(map[string]string{"error": err.Error()})
					cmd.SilenceErrors = true
				}
				return err
			}
		}

		// Detect author if not explicitly set. Runs after init so the
		// library's local config is consulted when there is one.
		if author == "" {
			author = detectAuthor()
		}

		return nil
	},
}

// topLevelCmdName returns the name of the top-level command (direct child of root).
// For "promptlint cat docs/readme", returns "cat".
func topLevelCmdName(cmd *cobra.Command) string {
	// Walk up until we find a command whose parent has no parent (the root)
	for cmd.HasParent() && cmd.Parent().HasParent() {
		cmd = cmd.Parent()
	}
	return cmd.Name()
}

// Execute runs the root command and handles process lifecycle.
// Opens audit logging, registers extensions, and executes the command.
// Exit code 1 indicates error.
func Execute() {
	// Initialise audit logger (warn if it fails, but continue)
	if err := log.Open(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: audit log unavailable: %v\n", err)
	}
	defer log.Close()

	registerExtensions()
	if err := rootCmd.Execute(); err != nil {
		log.Close()
		os.Exit(1)
	}
}

// RootCmd returns the root command for testing and extension access.
func RootCmd() *cobra.Command {
	return rootCmd
}
