// Package main is the entry point for the courtlistener-cli application.
// It initializes the root command and registers the schema and data
// management sub-commands, then executes the command-line interface.
package main

import (
	"fmt"
	"log"

	commands "github.com/SharpenYourSword/courtlistener/cmd/courtlistener-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "courtlistener-cli",
		Short: "Legal document database management CLI tool",
		Long: `courtlistener-cli is a command-line tool for managing the legal
document database behind the REST API. It can run schema migrations and
bulk-import court metadata from JSON files.`,
	}

	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	if err := commands.InitMigrateCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize migrate commands: %w", err)
	}

	if err := commands.InitImportCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize import commands: %w", err)
	}

	return nil
}
