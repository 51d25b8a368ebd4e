package courts

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Jurisdiction codes carried on a court.
const (
	JurisdictionFederalAppellate = "F"
	JurisdictionFederalDistrict  = "FD"
	JurisdictionFederalSpecial   = "FS"
	JurisdictionStateSupreme     = "S"
	JurisdictionStateAppellate   = "SA"
	JurisdictionStateTrial       = "ST"
	JurisdictionTesting          = "T"
)

// Court entity. The ID is the court's slug (e.g. "scotus", "ca9").
type Court struct {
	ID             string  `validate:"required,min=2,max=15"`
	FullName       string  `validate:"required,min=1,max=200"`
	ShortName      string  `validate:"required,min=1,max=100"`
	CitationString string  `validate:"max=100"`
	Jurisdiction   string  `validate:"required,oneof=F FD FS S SA ST T"`
	Position       float64 `validate:"gte=0"`
	URL            string  `validate:"omitempty,url"`
	InUse          bool
	StartDate      *time.Time
	EndDate        *time.Time
	DateModified   time.Time `validate:"required"`
}

// Validate for validating Court struct
func (c *Court) Validate() error {
	validate := validator.New()

	err := validate.Struct(c)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}
