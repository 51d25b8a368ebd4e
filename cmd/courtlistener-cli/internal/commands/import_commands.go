package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/SharpenYourSword/courtlistener/internal/app"
	"github.com/SharpenYourSword/courtlistener/internal/domain/courts"
	"github.com/SharpenYourSword/courtlistener/internal/infrastructure/persistence"
	"github.com/SharpenYourSword/courtlistener/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// ImportCommandHandler encapsulates logic for bulk-importing court metadata
// via CLI.
type ImportCommandHandler struct {
	logger logger.Logger
}

// NewImportCommandHandler initializes and returns an ImportCommandHandler
// instance with a configured logger.
func NewImportCommandHandler() (*ImportCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &ImportCommandHandler{
		logger: loggerInstance,
	}, nil
}

// courtRecord is one court row in an import file.
type courtRecord struct {
	ID             string     `json:"id"`
	FullName       string     `json:"full_name"`
	ShortName      string     `json:"short_name"`
	CitationString string     `json:"citation_string"`
	Jurisdiction   string     `json:"jurisdiction"`
	Position       float64    `json:"position"`
	URL            string     `json:"url"`
	InUse          bool       `json:"in_use"`
	StartDate      *time.Time `json:"start_date"`
	EndDate        *time.Time `json:"end_date"`
}

// ImportCourtsCmd reads a JSON array of courts and persists each entry
func (commandHandler *ImportCommandHandler) ImportCourtsCmd(cmd *cobra.Command, _ []string) {
	inputFilePath, err := cmd.Flags().GetString("input-file")
	if err != nil {
		commandHandler.logger.Error("invalid input-file flag ", err)
		return
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		commandHandler.logger.Error("invalid config flag ", err)
		return
	}

	data, err := os.ReadFile(filepath.Clean(inputFilePath))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	var records []courtRecord
	if err := json.Unmarshal(data, &records); err != nil {
		commandHandler.logger.Error("failed to parse import file ", err)
		return
	}

	db, err := setupDatabase(configPath)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	courtRepo, err := persistence.NewGormCourtRepository(db, commandHandler.logger)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	courtService, err := app.NewCourtService(courtRepo, commandHandler.logger)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	ctx := context.Background()
	imported := 0
	for _, record := range records {
		court := &courts.Court{
			ID:             record.ID,
			FullName:       record.FullName,
			ShortName:      record.ShortName,
			CitationString: record.CitationString,
			Jurisdiction:   record.Jurisdiction,
			Position:       record.Position,
			URL:            record.URL,
			InUse:          record.InUse,
			StartDate:      record.StartDate,
			EndDate:        record.EndDate,
		}

		if err := courtService.Create(ctx, court); err != nil {
			commandHandler.logger.Warn("skipping court ", record.ID, ": ", err)
			continue
		}
		imported++
	}

	commandHandler.logger.Info("Imported ", imported, " of ", len(records), " courts from ", inputFilePath)
}

// InitImportCommands registers import-related commands
func InitImportCommands(rootCmd *cobra.Command) error {
	handler, err := NewImportCommandHandler()

	if err != nil {
		return fmt.Errorf("failed to create import command handler %w", err)
	}

	var importCourtsCmd = &cobra.Command{
		Use:   "import-courts",
		Short: "Bulk-import court metadata from a JSON file",
		Run:   handler.ImportCourtsCmd,
	}
	importCourtsCmd.Flags().StringP("input-file", "", "", "Path to a JSON array of courts")
	importCourtsCmd.Flags().StringP("config", "", "", "Path to the YAML config file")
	rootCmd.AddCommand(importCourtsCmd)

	return nil
}
