package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// AuthSettings holds the static API keys used for write access and for the
// restricted read-only resources (docket entries, case documents, tags).
type AuthSettings struct {
	WriteAPIKeys      []string `mapstructure:"write_api_keys" validate:"dive,min=16"`
	RestrictedAPIKeys []string `mapstructure:"restricted_api_keys" validate:"dive,min=16"`
}

// Validate checks that all fields in AuthSettings are valid
func (s *AuthSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for AuthSettings: %w", err)
	}

	return nil
}
