package commands

import (
	"fmt"

	"github.com/SharpenYourSword/courtlistener/internal/infrastructure/persistence"
	"github.com/SharpenYourSword/courtlistener/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// MigrateCommandHandler encapsulates logic for running schema migrations via CLI.
type MigrateCommandHandler struct {
	logger logger.Logger
}

// NewMigrateCommandHandler initializes and returns a MigrateCommandHandler
// instance with a configured logger.
func NewMigrateCommandHandler() (*MigrateCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &MigrateCommandHandler{
		logger: loggerInstance,
	}, nil
}

// MigrateCmd runs the schema migrations against the configured database
func (commandHandler *MigrateCommandHandler) MigrateCmd(cmd *cobra.Command, _ []string) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		commandHandler.logger.Error("invalid config flag ", err)
		return
	}

	db, err := setupDatabase(configPath)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	if err := persistence.MigrateAll(db); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Database migrations completed successfully")
}

// InitMigrateCommands registers migration-related commands
func InitMigrateCommands(rootCmd *cobra.Command) error {
	handler, err := NewMigrateCommandHandler()

	if err != nil {
		return fmt.Errorf("failed to create migrate command handler %w", err)
	}

	var migrateCmd = &cobra.Command{
		Use:   "migrate",
		Short: "Run database schema migrations",
		Run:   handler.MigrateCmd,
	}
	migrateCmd.Flags().StringP("config", "", "", "Path to the YAML config file")
	rootCmd.AddCommand(migrateCmd)

	return nil
}
