package commands

import (
	"fmt"
	"os"

	"github.com/SharpenYourSword/courtlistener/internal/infrastructure/persistence"
	"github.com/SharpenYourSword/courtlistener/internal/pkg/config"
	"github.com/SharpenYourSword/courtlistener/internal/pkg/logger"

	"gorm.io/gorm"
)

func setupLogger() (logger.Logger, error) {
	settings := &config.LoggerSettings{
		LogLevel: "info",
		LogType:  "console",
		FilePath: "",
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// setupDatabase loads the config file and opens the database connection the
// commands operate on. The config path comes from the --config flag, with
// CONFIG_PATH as fallback.
func setupDatabase(configPath string) (*gorm.DB, error) {
	if configPath == "" {
		configPath = os.Getenv("CONFIG_PATH")
	}
	if configPath == "" {
		configPath = "../../configs/rest-app.yaml"
	}

	cfg, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}

	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	return db, nil
}
