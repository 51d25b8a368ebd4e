package courts

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// OriginatingCourtInfo holds docket metadata from the lower court a case
// originated in, linked from an appellate docket.
type OriginatingCourtInfo struct {
	ID               string `validate:"required,uuid4"`
	DocketNumber     string `validate:"max=100"`
	AssignedToStr    string `validate:"max=200"`
	OrderingJudgeStr string `validate:"max=200"`
	CourtReporter    string `validate:"max=200"`
	DateDisposed     *time.Time
	DateFiled        *time.Time
	DateJudgment     *time.Time
	DateReceived     *time.Time
	DateCreated      time.Time `validate:"required"`
	DateModified     time.Time `validate:"required"`
}

// Validate for validating OriginatingCourtInfo struct
func (o *OriginatingCourtInfo) Validate() error {
	validate := validator.New()

	err := validate.Struct(o)
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
