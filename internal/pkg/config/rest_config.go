package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// RestConfig holds the full configuration of the REST API binary
type RestConfig struct {
	Port     string           `mapstructure:"port" validate:"required"`
	Database DatabaseSettings `mapstructure:"database"`
	Logger   LoggerSettings   `mapstructure:"logger"`
	Cache    CacheSettings    `mapstructure:"cache"`
	Auth     AuthSettings     `mapstructure:"auth"`
}

// Validate checks that all nested settings are valid
func (c *RestConfig) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("port is required")
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	if err := c.Cache.Validate(); err != nil {
		return err
	}
	if err := c.Auth.Validate(); err != nil {
		return err
	}
	return nil
}

// InitializeRestConfig loads the REST API configuration from a YAML file and
// the environment. Environment variables override file values, with nested
// keys joined by underscores (e.g. DATABASE_DSN).
func InitializeRestConfig(configPath string) (*RestConfig, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	var cfg RestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}
